// Command hrctl runs administrative tasks against the HR database.
package main

import (
	"fmt"
	"os"

	"sharda-hr/internal/bootstrap"
	"sharda-hr/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:           "hrctl",
	Short:         "Administrative tasks for the HR backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg = config.Load()
		_, err := bootstrap.NewLogger(cfg.IsProduction())
		return err
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(seedRBACCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hrctl:", err)
		os.Exit(1)
	}
}
