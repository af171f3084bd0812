// ABOUTME: CLI commands for the health metric catalog.
// ABOUTME: add/list; the catalog is reference data and rarely changes.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weartrack/internal/models"
)

var metricCmd = &cobra.Command{
	Use:     "metric",
	Aliases: []string{"m"},
	Short:   "Manage the health metric catalog",
	Long: `Manage the catalog of measurable quantities. Each entry pairs a
unique metric name with its unit of measure (e.g. "Heart Rate" / "bpm").

EXAMPLES:

  weartrack metric add "Heart Rate" bpm
  weartrack metric list`,
}

var metricAddCmd = &cobra.Command{
	Use:   "add <name> <unit>",
	Short: "Add a catalog entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := models.NewHealthMetric(args[0], args[1])
		if err := m.Validate(); err != nil {
			return err
		}

		if err := repo.CreateMetric(m); err != nil {
			return fmt.Errorf("failed to create metric: %w", err)
		}

		color.Green("✓ Added %s", m.Name)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprintf("#%d", m.ID), m.Unit)
		return nil
	},
}

var metricListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, err := repo.ListMetrics()
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}
		if len(metrics) == 0 {
			fmt.Println("No metrics found. Run 'weartrack seed' or add some.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range metrics {
			fmt.Printf("%s %s %s\n",
				faint.Sprintf("#%-3d", m.ID),
				padRight(m.Name, 28),
				m.Unit)
		}
		return nil
	},
}

func init() {
	metricCmd.AddCommand(metricAddCmd)
	metricCmd.AddCommand(metricListCmd)
	rootCmd.AddCommand(metricCmd)
}
