// ABOUTME: CLI commands for read-only reports.
// ABOUTME: avg/summary/devices/timeline over the joined tables.
package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var timelineLimit int

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"r"},
	Short:   "Run reports over the recorded data",
	Long: `Aggregate and join the recorded data.

EXAMPLES:

  weartrack report avg "Heart Rate"     # Mean value across all readings
  weartrack report summary              # Observation counts per user
  weartrack report devices              # Observation counts per device
  weartrack report timeline 1           # One user's resolved history`,
}

var reportAvgCmd = &cobra.Command{
	Use:   "avg <metric>",
	Short: "Average value for one metric",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		avg, err := repo.AverageForMetric(args[0])
		if err != nil {
			return fmt.Errorf("failed to compute average: %w", err)
		}

		if avg.Count == 0 {
			fmt.Printf("No data points recorded for %s.\n", avg.MetricName)
			return nil
		}
		fmt.Printf("%s: %.2f %s %s\n",
			color.New(color.Bold).Sprint(avg.MetricName),
			avg.Average, avg.Unit,
			color.New(color.Faint).Sprintf("(across %d data points)", avg.Count))
		return nil
	},
}

var reportSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Observation counts per user",
	RunE: func(cmd *cobra.Command, args []string) error {
		activity, err := repo.ActivityByUser()
		if err != nil {
			return fmt.Errorf("failed to load summary: %w", err)
		}
		if len(activity) == 0 {
			fmt.Println("No users found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range activity {
			last := "never"
			if !a.LastSeen.IsZero() {
				last = humanize.Time(a.LastSeen)
			}
			fmt.Printf("%s %s %4d data points %s\n",
				faint.Sprintf("#%-3d", a.UserID),
				padRight(a.FullName, 22),
				a.Count,
				faint.Sprintf("last %s", last))
		}
		return nil
	},
}

var reportDevicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Observation counts per device",
	RunE: func(cmd *cobra.Command, args []string) error {
		usage, err := repo.UsageByDevice()
		if err != nil {
			return fmt.Errorf("failed to load device usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No devices found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, u := range usage {
			fmt.Printf("%s %s %s %4d data points\n",
				faint.Sprintf("#%-3d", u.DeviceID),
				padRight(u.Name, 24),
				padRight(u.Model, 24),
				u.Count)
		}
		return nil
	},
}

var reportTimelineCmd = &cobra.Command{
	Use:   "timeline <user-id|email>",
	Short: "One user's observations with metric and device resolved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := resolveUser(args[0])
		if err != nil {
			return err
		}

		entries, err := repo.UserTimeline(u.ID, timelineLimit)
		if err != nil {
			return fmt.Errorf("failed to load timeline: %w", err)
		}
		if len(entries) == 0 {
			fmt.Printf("No data points recorded for %s.\n", u.FullName())
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s <%s>\n", color.New(color.Bold).Sprint(u.FullName()), u.Email)
		for _, e := range entries {
			fmt.Printf("  %s %s %8.2f %s %s\n",
				faint.Sprint(e.Timestamp.Format("2006-01-02 15:04")),
				padRight(e.MetricName, 26),
				e.Value,
				padRight(e.Unit, 12),
				faint.Sprintf("via %s", e.DeviceName))
		}
		return nil
	},
}

func init() {
	reportTimelineCmd.Flags().IntVarP(&timelineLimit, "limit", "n", 20, "max number of results")

	reportCmd.AddCommand(reportAvgCmd)
	reportCmd.AddCommand(reportSummaryCmd)
	reportCmd.AddCommand(reportDevicesCmd)
	reportCmd.AddCommand(reportTimelineCmd)
	rootCmd.AddCommand(reportCmd)
}
