package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err = repository.Migrate(cfg.Postgres.DSN()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}
