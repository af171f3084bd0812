// ABOUTME: CLI commands for personalized recommendations.
// ABOUTME: add/list/delete, always tied to an owning user.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weartrack/internal/models"
)

var (
	recommendDesc  string
	recommendUser  string
	recommendLimit int
)

var recommendCmd = &cobra.Command{
	Use:     "recommend",
	Aliases: []string{"rec"},
	Short:   "Manage personalized recommendations",
	Long: `Manage personalized textual advice tied to a user.

EXAMPLES:

  weartrack recommend add 1 "Increase daily steps" --desc "Try a walk after lunch."
  weartrack recommend list --user 1
  weartrack recommend delete 7`,
}

var recommendAddCmd = &cobra.Command{
	Use:   "add <user-id|email> <title>",
	Short: "Add a recommendation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := resolveUser(args[0])
		if err != nil {
			return err
		}

		r := models.NewRecommendation(u.ID, args[1])
		if recommendDesc != "" {
			r.WithDescription(recommendDesc)
		}
		if err := r.Validate(); err != nil {
			return err
		}

		if err := repo.CreateRecommendation(r); err != nil {
			return fmt.Errorf("failed to create recommendation: %w", err)
		}

		color.Green("✓ Added recommendation for %s", u.FullName())
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprintf("#%d", r.ID), r.Title)
		return nil
	},
}

var recommendListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		var userID *int64
		if recommendUser != "" {
			u, err := resolveUser(recommendUser)
			if err != nil {
				return err
			}
			userID = &u.ID
		}

		recs, err := repo.ListRecommendations(userID, recommendLimit)
		if err != nil {
			return fmt.Errorf("failed to list recommendations: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("No recommendations found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range recs {
			desc := ""
			if r.Description != nil && *r.Description != "" {
				desc = faint.Sprintf(" %s", truncate(*r.Description, 50))
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprintf("#%-3d", r.ID),
				faint.Sprintf("user #%-3d", r.UserID),
				r.Title,
				desc)
		}
		return nil
	},
}

var recommendDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a recommendation",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid recommendation id: %s", args[0])
		}

		if err := repo.DeleteRecommendation(id); err != nil {
			return fmt.Errorf("failed to delete recommendation: %w", err)
		}

		color.Yellow("✗ Deleted recommendation #%d", id)
		return nil
	},
}

func init() {
	recommendAddCmd.Flags().StringVar(&recommendDesc, "desc", "", "free-text description")
	recommendListCmd.Flags().StringVar(&recommendUser, "user", "", "filter by user (id or email)")
	recommendListCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "max number of results")

	recommendCmd.AddCommand(recommendAddCmd)
	recommendCmd.AddCommand(recommendListCmd)
	recommendCmd.AddCommand(recommendDeleteCmd)
	rootCmd.AddCommand(recommendCmd)
}
