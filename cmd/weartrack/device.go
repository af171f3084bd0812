// ABOUTME: CLI commands for managing wearable devices.
// ABOUTME: add/list/assign/delete with optional user ownership.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weartrack/internal/models"
)

var (
	deviceOwner string
	deviceUser  string
	deviceLimit int
)

var deviceCmd = &cobra.Command{
	Use:     "device",
	Aliases: []string{"dev"},
	Short:   "Manage wearable devices",
	Long: `Manage wearable hardware units.

EXAMPLES:

  weartrack device add "FitBit Charge 5" "Alice's Charge 5" --owner 1
  weartrack device list
  weartrack device list --user alice.smith@example.com
  weartrack device assign 4 2
  weartrack device delete 4`,
}

var deviceAddCmd = &cobra.Command{
	Use:   "add <model> <name>",
	Short: "Register a device",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev := models.NewDevice(args[0], args[1])
		if deviceOwner != "" {
			u, err := resolveUser(deviceOwner)
			if err != nil {
				return err
			}
			dev.WithOwner(u.ID)
		}
		if err := dev.Validate(); err != nil {
			return err
		}

		if err := repo.CreateDevice(dev); err != nil {
			return fmt.Errorf("failed to create device: %w", err)
		}

		color.Green("✓ Added %s", dev.Name)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprintf("#%d", dev.ID), dev.Model)
		return nil
	},
}

var deviceListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		var ownerID *int64
		if deviceUser != "" {
			u, err := resolveUser(deviceUser)
			if err != nil {
				return err
			}
			ownerID = &u.ID
		}

		devices, err := repo.ListDevices(ownerID, deviceLimit)
		if err != nil {
			return fmt.Errorf("failed to list devices: %w", err)
		}
		if len(devices) == 0 {
			fmt.Println("No devices found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, dev := range devices {
			owner := "unassigned"
			if dev.OwnerID != nil {
				owner = fmt.Sprintf("user #%d", *dev.OwnerID)
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprintf("#%-3d", dev.ID),
				padRight(dev.Name, 24),
				padRight(dev.Model, 24),
				faint.Sprint(owner))
		}
		return nil
	},
}

var deviceAssignCmd = &cobra.Command{
	Use:   "assign <device-id> <user-id|email>",
	Short: "Assign a device to a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deviceID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid device id: %s", args[0])
		}
		u, err := resolveUser(args[1])
		if err != nil {
			return err
		}

		if err := repo.AssignDevice(deviceID, u.ID); err != nil {
			return fmt.Errorf("failed to assign device: %w", err)
		}

		color.Green("✓ Assigned device #%d to %s", deviceID, u.FullName())
		return nil
	},
}

var deviceDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a device",
	Long: `Delete a device. Observations recorded by it are removed as well.
There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid device id: %s", args[0])
		}

		dev, err := repo.GetDevice(id)
		if err != nil {
			return fmt.Errorf("device not found: %s", args[0])
		}

		if err := repo.DeleteDevice(id); err != nil {
			return fmt.Errorf("failed to delete device: %w", err)
		}

		color.Yellow("✗ Deleted %s", dev.Name)
		return nil
	},
}

func init() {
	deviceAddCmd.Flags().StringVar(&deviceOwner, "owner", "", "owning user (id or email)")
	deviceListCmd.Flags().StringVar(&deviceUser, "user", "", "filter by owning user (id or email)")
	deviceListCmd.Flags().IntVarP(&deviceLimit, "limit", "n", 0, "max number of results")

	deviceCmd.AddCommand(deviceAddCmd)
	deviceCmd.AddCommand(deviceListCmd)
	deviceCmd.AddCommand(deviceAssignCmd)
	deviceCmd.AddCommand(deviceDeleteCmd)
	rootCmd.AddCommand(deviceCmd)
}
