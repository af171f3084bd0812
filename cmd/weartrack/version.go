// ABOUTME: CLI command printing the weartrack version.
// ABOUTME: Runs without opening the database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the weartrack version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("weartrack %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
