package main

import (
	"fmt"

	"sharda-hr/internal/rbac"
	"sharda-hr/internal/rbac/infra"
	"sharda-hr/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var seedRBACCmd = &cobra.Command{
	Use:   "seed-rbac <company_id>",
	Short: "Create the built-in roles and their permissions for a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		companyID := args[0]
		if _, err := uuid.Parse(companyID); err != nil {
			return fmt.Errorf("company id %q is not a uuid", companyID)
		}

		db, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.Retries)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
		if err != nil {
			return err
		}
		svc := rbac.NewService(rbac.NewRepository(db), enforcer)
		if err := svc.SeedDefaultRoles(cmd.Context(), companyID); err != nil {
			return err
		}

		roles, err := svc.ListRoles(cmd.Context(), companyID)
		if err != nil {
			return err
		}
		for _, r := range roles {
			cmd.Printf("%-10s %s\n", r.Name, r.Description)
		}
		return nil
	},
}
