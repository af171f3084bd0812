// ABOUTME: CLI commands for recorded data points (the HealthData fact table).
// ABOUTME: add/list/delete plus the shared list formatting helpers.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weartrack/internal/models"
	"weartrack/internal/storage"
)

var (
	dataLimit  int
	dataUser   string
	dataMetric string
	dataDevice int64
	dataAt     string
)

var dataCmd = &cobra.Command{
	Use:     "data",
	Aliases: []string{"d"},
	Short:   "Manage recorded data points",
	Long: `Record and inspect individual observations. Every data point
references exactly one user, one catalog metric, and one device.

EXAMPLES:

  weartrack data add 75.5 --user 1 --metric "Heart Rate" --device 1
  weartrack data add 8234 --user alice.smith@example.com --metric Steps --device 1 --at "2024-03-01 07:00"
  weartrack data list --user 1 -n 50
  weartrack data delete 17`,
}

var dataAddCmd = &cobra.Command{
	Use:   "add <value>",
	Short: "Record a data point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[0])
		}
		if dataUser == "" || dataMetric == "" || dataDevice == 0 {
			return fmt.Errorf("--user, --metric, and --device are required")
		}

		u, err := resolveUser(dataUser)
		if err != nil {
			return err
		}
		m, err := repo.GetMetricByName(dataMetric)
		if err != nil {
			return fmt.Errorf("metric not found: %s", dataMetric)
		}

		o := models.NewObservation(u.ID, m.ID, dataDevice, value)
		if dataAt != "" {
			t, err := parseTime(dataAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", dataAt)
			}
			o.WithTimestamp(t)
		}
		if err := o.Validate(); err != nil {
			return err
		}

		if err := repo.CreateObservation(o); err != nil {
			return fmt.Errorf("failed to record data point: %w", err)
		}

		color.Green("✓ Recorded %s", m.Name)
		fmt.Printf("  %s %.2f %s for %s\n",
			color.New(color.Faint).Sprintf("#%d", o.ID),
			o.Value, m.Unit, u.FullName())
		return nil
	},
}

var dataListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List data points",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := storage.ObservationFilter{Limit: dataLimit}
		if dataUser != "" {
			u, err := resolveUser(dataUser)
			if err != nil {
				return err
			}
			filter.UserID = &u.ID
		}
		if dataMetric != "" {
			m, err := repo.GetMetricByName(dataMetric)
			if err != nil {
				return fmt.Errorf("metric not found: %s", dataMetric)
			}
			filter.MetricID = &m.ID
		}
		if dataDevice != 0 {
			filter.DeviceID = &dataDevice
		}

		observations, err := repo.ListObservations(filter)
		if err != nil {
			return fmt.Errorf("failed to list data points: %w", err)
		}
		if len(observations) == 0 {
			fmt.Println("No data points found.")
			return nil
		}

		metrics, err := repo.ListMetrics()
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}
		names := make(map[int64]*models.HealthMetric, len(metrics))
		for _, m := range metrics {
			names[m.ID] = m
		}

		faint := color.New(color.Faint)
		for _, o := range observations {
			name, unit := "?", ""
			if m, ok := names[o.MetricID]; ok {
				name, unit = m.Name, m.Unit
			}
			fmt.Printf("%s %s %s %.2f %s %s\n",
				faint.Sprintf("#%-4d", o.ID),
				faint.Sprint(o.Timestamp.Format("2006-01-02 15:04")),
				padRight(name, 26),
				o.Value,
				unit,
				faint.Sprintf("(%s)", humanize.Time(o.Timestamp)))
		}
		return nil
	},
}

var dataDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a data point",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid data point id: %s", args[0])
		}

		if err := repo.DeleteObservation(id); err != nil {
			return fmt.Errorf("failed to delete data point: %w", err)
		}

		color.Yellow("✗ Deleted data point #%d", id)
		return nil
	},
}

// truncate and padRight count runes, not bytes, so multi-byte units
// like °C keep columns aligned.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

func init() {
	dataAddCmd.Flags().StringVar(&dataUser, "user", "", "user (id or email)")
	dataAddCmd.Flags().StringVar(&dataMetric, "metric", "", "metric name")
	dataAddCmd.Flags().Int64Var(&dataDevice, "device", 0, "device id")
	dataAddCmd.Flags().StringVar(&dataAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")

	dataListCmd.Flags().StringVar(&dataUser, "user", "", "filter by user (id or email)")
	dataListCmd.Flags().StringVar(&dataMetric, "metric", "", "filter by metric name")
	dataListCmd.Flags().Int64Var(&dataDevice, "device", 0, "filter by device id")
	dataListCmd.Flags().IntVarP(&dataLimit, "limit", "n", 20, "max number of results")

	dataCmd.AddCommand(dataAddCmd)
	dataCmd.AddCommand(dataListCmd)
	dataCmd.AddCommand(dataDeleteCmd)
	rootCmd.AddCommand(dataCmd)
}
