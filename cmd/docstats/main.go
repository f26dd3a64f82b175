package main

import (
	"context"
	"fmt"
	"os"

	"doctools/internal/adapters/filesystem"
	"doctools/internal/application/commands"
	"doctools/internal/config"
)

// docstats is the zero-argument statistics updater: it recomputes issue
// counts for the fixed repository layout and rewrites the README statistics
// block in place.
func main() {
	repo := filesystem.NewRepository(config.RepoRoot())

	result, err := commands.NewUpdateStatsCommand(repo).Execute(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "docstats: %v\n", err)
		os.Exit(1)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}

	fmt.Println("Statistics updated:")
	fmt.Printf("- Total Issues: %d\n", result.Stats.TotalIssues)
	fmt.Printf("- Quick Fixes: %d\n", result.Stats.QuickFixes)
	fmt.Printf("- Detailed Guides: %d\n", result.Stats.DetailedGuides)
	fmt.Printf("- Last Updated: %s\n", result.Stats.LastUpdated)
}
