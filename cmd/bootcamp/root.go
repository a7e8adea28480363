package main

import (
	"github.com/spf13/cobra"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bootcamp",
	Short: "Bootcamp registration service",
	Long: `Serves the bootcamp catalog, takes registrations from signed-in visitors
and gives administrators the tools to review them.

Without a subcommand the HTTP server is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: $CONFIG_PATH)")

	rootCmd.AddCommand(serveCmd, migrateCmd, adminCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
