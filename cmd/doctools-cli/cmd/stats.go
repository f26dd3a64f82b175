package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"doctools/internal/application/commands"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Recompute the README statistics block",
	Long: `Recompute issue counts from the category directories and rewrite
the statistics block in the root README.md.

Example:
  doctools-cli stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatsUpdate(context.Background())
	},
}

// runStatsUpdate is shared with "toc --update-readme".
func runStatsUpdate(ctx context.Context) error {
	statsCmd := commands.NewUpdateStatsCommand(GetRepo())
	result, err := statsCmd.Execute(ctx)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		report.Warnf("%v", w)
	}
	if !result.DateFound {
		report.Warnf("No Last Updated line found in README.md")
	}

	fmt.Println("Statistics updated:")
	fmt.Printf("- Total Issues: %d\n", result.Stats.TotalIssues)
	fmt.Printf("- Quick Fixes: %d\n", result.Stats.QuickFixes)
	fmt.Printf("- Detailed Guides: %d\n", result.Stats.DetailedGuides)
	fmt.Printf("- Last Updated: %s\n", result.Stats.LastUpdated)

	report.Successf("Updated README.md with current statistics")
	return nil
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
