// ABOUTME: CLI command for loading the sample dataset.
// ABOUTME: Seeding is idempotent; a populated database is left untouched.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample dataset",
	Long: `Load the bundled sample dataset: 20 users, 20 devices, the
20-entry metric catalog, a few days of observations, and 20
recommendations. Running seed against a database that already has
users is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := repo.Seed()
		if err != nil {
			return fmt.Errorf("failed to seed: %w", err)
		}
		if summary == nil {
			fmt.Println("Database already has data; nothing to do.")
			return nil
		}

		color.Green("✓ Seeded sample data")
		fmt.Printf("  %d users, %d devices, %d metrics, %d data points, %d recommendations\n",
			summary.Users, summary.Devices, summary.Metrics,
			summary.Observations, summary.Recommendations)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
