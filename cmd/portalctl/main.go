// Command portalctl runs maintenance tasks against the portal database:
// schema migration, initial data, bootstrap admin, bulk imports and exports.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"institute-portal-backend/internal/config"
	"institute-portal-backend/internal/database"
	"institute-portal-backend/internal/logger"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "portalctl",
	Short:         "Maintenance commands for the institute portal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
			logrus.WithError(err).Warn("could not read env file")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "File with environment variables")

	importCmd.AddCommand(importSchoolsCmd)
	exportCmd.AddCommand(exportPayrollCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	logger.Setup("info", os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// openDB loads the configuration and connects without migrating; the
// migrate command is the only one that changes the schema.
func openDB() (*gorm.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.Setup(cfg.LogLevel, os.Stderr)
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:    gormlogger.Silent,
		SkipMigrate: true,
	})
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}
