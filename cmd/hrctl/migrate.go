package main

import (
	"sharda-hr/internal/app"
	"sharda-hr/internal/shared/connection"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update every table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.Retries)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := app.Migrate(db); err != nil {
			return err
		}
		cmd.Println("migration complete")
		return nil
	},
}
