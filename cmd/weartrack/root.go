// ABOUTME: Root Cobra command for the weartrack CLI.
// ABOUTME: Opens the repository via config in PersistentPre/PostRunE.
package main

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"weartrack/internal/config"
	"weartrack/internal/storage"
)

var repo storage.Repository

var rootCmd = &cobra.Command{
	Use:   "weartrack",
	Short: "Wearable health device tracker",
	Long: `Weartrack tracks wearable-health-device data: users, devices,
a catalog of health metrics, recorded data points, and personalized
recommendations.

QUICK START:

  $ weartrack seed                          # Load the sample dataset
  $ weartrack user list                     # See who is registered
  $ weartrack data add --user 1 --metric "Heart Rate" --device 1 75.5
  $ weartrack report avg "Heart Rate"       # Mean across all readings

ENTITIES:

  user       People who own wearables. Deleting a user removes their
             observations, recommendations, and devices.
  device     Wearable hardware units, each optionally owned by a user.
  metric     The catalog of measurable quantities (name + unit).
  data       Individual observations: value + time + user/metric/device.
  recommend  Personalized advice tied to a user.

REPORTS:

  $ weartrack report avg <metric>      # Average value for one metric
  $ weartrack report summary           # Observation counts per user
  $ weartrack report devices           # Observation counts per device
  $ weartrack report timeline <user>   # One user's resolved history

DATA STORAGE:

  A single SQLite database at ~/.local/share/weartrack/weartrack.db.
  Override with WEARTRACK_DATA_DIR (env or .env file) or data_dir in
  ~/.config/weartrack/config.json. The schema is created on first use
  and versioned with migrations ('weartrack migrate status').`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// A .env file is optional; missing is fine.
		_ = godotenv.Load()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			err := repo.Close()
			repo = nil
			return err
		}
		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}
