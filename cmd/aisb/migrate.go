package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aisb-selection/aisb/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Apply the embedded database schema to DATABASE_URL.

The schema is idempotent; running migrate twice is safe.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

// openDatabase connects to the configured database.
func openDatabase(cmd *cobra.Command) (*database.DB, error) {
	if err := loadConfig(); err != nil {
		return nil, err
	}
	if !cfg.HasDatabase() {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	db, err := database.New(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(cmd.Context()); err != nil {
		return err
	}

	logger.Info("schema applied")
	return nil
}
