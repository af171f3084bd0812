// ABOUTME: CLI commands for schema migrations.
// ABOUTME: up/down/status backed by goose-managed versioned SQL.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long: `Manage the versioned database schema. The schema is brought up to
date automatically whenever the database is opened; these commands are
for inspecting and rolling back.

EXAMPLES:

  weartrack migrate status   # Current schema version
  weartrack migrate up       # Apply pending migrations (normally a no-op)
  weartrack migrate down     # Roll back the most recent migration`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		version, err := repo.SchemaVersion()
		if err != nil {
			return err
		}
		color.Green("✓ Schema up to date at version %d", version)
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.MigrateDown(); err != nil {
			return fmt.Errorf("failed to roll back: %w", err)
		}
		version, err := repo.SchemaVersion()
		if err != nil {
			return err
		}
		color.Yellow("✗ Rolled back; schema now at version %d", version)
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := repo.SchemaVersion()
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		fmt.Printf("Schema version: %d\n", version)
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}
