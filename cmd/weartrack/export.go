// ABOUTME: CLI commands for exporting and importing snapshots.
// ABOUTME: JSON/YAML/Markdown export; JSON import preserving row IDs.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weartrack/internal/storage"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all data",
	Long: `Export the full dataset as JSON, YAML, or a Markdown report.

JSON and YAML snapshots preserve row IDs and can be re-imported with
'weartrack import'. Markdown is a human-readable per-user report.

EXAMPLES:

  weartrack export json --output backup.json
  weartrack export yaml
  weartrack export markdown --since 2024-03-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		db, ok := repo.(*storage.DB)
		if !ok {
			return fmt.Errorf("export requires the SQLite backend")
		}

		var out []byte
		var err error
		switch args[0] {
		case "json":
			out, err = db.ExportJSON()
		case "yaml":
			out, err = db.ExportYAML()
		case "markdown":
			var since *time.Time
			if exportSince != "" {
				t, perr := parseTime(exportSince)
				if perr != nil {
					return fmt.Errorf("invalid since date: %s", exportSince)
				}
				since = &t
			}
			var s string
			s, err = db.ExportMarkdown(since)
			out = []byte(s)
		default:
			return fmt.Errorf("unknown format: %s (want json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, out, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", exportOutput, err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			return nil
		}
		fmt.Print(string(out))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON snapshot",
	Long: `Import a snapshot previously produced by 'weartrack export json'.
Row IDs are preserved, so importing into a database that already holds
conflicting rows fails.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, ok := repo.(*storage.DB)
		if !ok {
			return fmt.Errorf("import requires the SQLite backend")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		if err := db.ImportJSON(data); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		color.Green("✓ Imported %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "markdown only: include data since (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
