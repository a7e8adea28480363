package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/app"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/repository"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/service"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the administrator roster",
}

var adminAddCmd = &cobra.Command{
	Use:   "add <email>",
	Short: "Add an administrator",
	Long: `Add an administrator by email.

Use this to create the first administrator; after that the roster can be
managed from the admin panel.

Examples:
  bootcamp admin add boss@bootcamps.tech
  bootcamp admin add boss@bootcamps.tech --config ./config.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeDB, err := adminService()
		if err != nil {
			return err
		}
		defer closeDB()

		admin, err := svc.Add(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("add admin: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "admin %s added (%s)\n", admin.Email, admin.ID)
		return nil
	},
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List administrators as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeDB, err := adminService()
		if err != nil {
			return err
		}
		defer closeDB()

		admins, err := svc.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list admins: %w", err)
		}

		out, err := json.MarshalIndent(admins, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminAddCmd, adminListCmd)
}

// adminService connects to the database after applying migrations, so the
// roster can be seeded before the server ever ran.
func adminService() (*service.AdminService, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := app.InitLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err = repository.Migrate(cfg.Postgres.DSN()); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	db, err := app.ConnectDB(cfg.Postgres, log)
	if err != nil {
		return nil, nil, err
	}

	closeDB := func() { _ = db.Master.Close() }
	return service.NewAdminService(repository.NewAdminRepo(db), log), closeDB, nil
}
