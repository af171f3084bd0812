// ABOUTME: CLI commands for managing users.
// ABOUTME: add/list/show/delete; delete reports the full purge summary.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weartrack/internal/models"
)

var (
	userAge        int
	userGender     string
	userRegistered string
	userLimit      int
)

var userCmd = &cobra.Command{
	Use:     "user",
	Aliases: []string{"u"},
	Short:   "Manage users",
	Long: `Manage the people who own wearable devices.

EXAMPLES:

  weartrack user add Alice Smith alice.smith@example.com --age 34
  weartrack user list
  weartrack user show alice.smith@example.com
  weartrack user delete 3`,
}

var userAddCmd = &cobra.Command{
	Use:   "add <first> <last> <email>",
	Short: "Register a user",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := models.NewUser(args[0], args[1], args[2])
		if userAge > 0 {
			u.WithAge(userAge)
		}
		if userGender != "" {
			u.WithGender(userGender)
		}
		if userRegistered != "" {
			t, err := parseTime(userRegistered)
			if err != nil {
				return fmt.Errorf("invalid registration date: %s", userRegistered)
			}
			u.WithRegistrationDate(t)
		}
		if err := u.Validate(); err != nil {
			return err
		}

		if err := repo.CreateUser(u); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		color.Green("✓ Registered %s", u.FullName())
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprintf("#%d", u.ID), u.Email)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := repo.ListUsers(userLimit)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, u := range users {
			age := ""
			if u.Age != nil {
				age = fmt.Sprintf(" age %d", *u.Age)
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprintf("#%-3d", u.ID),
				padRight(u.FullName(), 22),
				u.Email,
				faint.Sprint(age))
		}
		return nil
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show <id|email>",
	Short: "Show a user and their recent observations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := resolveUser(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s <%s>\n", color.New(color.Bold).Sprint(u.FullName()), u.Email)
		if u.Age != nil {
			fmt.Printf("  Age: %d\n", *u.Age)
		}
		if u.Gender != nil {
			fmt.Printf("  Gender: %s\n", *u.Gender)
		}
		fmt.Printf("  Registered: %s\n", u.RegistrationDate.Format("2006-01-02"))

		devices, err := repo.ListDevices(&u.ID, 0)
		if err != nil {
			return fmt.Errorf("failed to list devices: %w", err)
		}
		if len(devices) > 0 {
			fmt.Println("\nDevices:")
			for _, dev := range devices {
				fmt.Printf("  #%d %s (%s)\n", dev.ID, dev.Name, dev.Model)
			}
		}

		entries, err := repo.UserTimeline(u.ID, 10)
		if err != nil {
			return fmt.Errorf("failed to load timeline: %w", err)
		}
		if len(entries) > 0 {
			fmt.Println("\nRecent observations:")
			for _, e := range entries {
				fmt.Printf("  %s %s %.2f %s via %s\n",
					e.Timestamp.Format("2006-01-02 15:04"),
					padRight(e.MetricName, 24), e.Value, e.Unit, e.DeviceName)
			}
		}
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:     "delete <id|email>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a user and everything belonging to them",
	Long: `Delete a user. Their observations, recommendations, and owned
devices (with those devices' observations) are removed in the same
transaction. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := resolveUser(args[0])
		if err != nil {
			return err
		}

		summary, err := repo.DeleteUser(u.ID)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		color.Yellow("✗ Deleted %s", u.FullName())
		fmt.Printf("  %d observations, %d recommendations, %d devices removed\n",
			summary.Observations, summary.Recommendations, summary.Devices)
		return nil
	},
}

// resolveUser accepts a numeric ID or an email address.
func resolveUser(idOrEmail string) (*models.User, error) {
	if id, err := strconv.ParseInt(idOrEmail, 10, 64); err == nil {
		u, err := repo.GetUser(id)
		if err != nil {
			return nil, fmt.Errorf("user not found: %s", idOrEmail)
		}
		return u, nil
	}
	u, err := repo.GetUserByEmail(idOrEmail)
	if err != nil {
		return nil, fmt.Errorf("user not found: %s", idOrEmail)
	}
	return u, nil
}

func init() {
	userAddCmd.Flags().IntVar(&userAge, "age", 0, "age in years")
	userAddCmd.Flags().StringVar(&userGender, "gender", "", "gender")
	userAddCmd.Flags().StringVar(&userRegistered, "registered", "", "registration date (YYYY-MM-DD)")
	userListCmd.Flags().IntVarP(&userLimit, "limit", "n", 0, "max number of results")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userShowCmd)
	userCmd.AddCommand(userDeleteCmd)
	rootCmd.AddCommand(userCmd)
}
