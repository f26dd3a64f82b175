package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"doctools/internal/application"
	"doctools/internal/application/commands"
)

var (
	tocMaxDepth     int
	tocMinDepth     int
	tocInsertAfter  string
	tocRecursive    bool
	tocUpdateReadme bool
)

var tocCmd = &cobra.Command{
	Use:   "toc <path>",
	Short: "Generate or refresh the Table of Contents in markdown files",
	Long: `Generate or refresh the sentinel-delimited Table of Contents block
in a markdown file, or in every markdown file of a directory.

Examples:
  doctools-cli toc README.md
  doctools-cli toc detailed-guides --recursive
  doctools-cli toc guide.md --min-depth 2 --max-depth 4
  doctools-cli toc intro.md --insert-after "# Introduction"
  doctools-cli toc . --update-readme`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// --update-readme short-circuits TOC processing entirely.
		if tocUpdateReadme {
			return runStatsUpdate(ctx)
		}

		updateCmd := commands.NewUpdateTOCCommand(GetRepo(), args[0])
		updateCmd.MaxDepth = tocMaxDepth
		updateCmd.MinDepth = tocMinDepth
		updateCmd.InsertAfter = tocInsertAfter
		updateCmd.Recursive = tocRecursive

		summary, err := updateCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if summary.Total() == 0 {
			report.Warnf("No markdown files found in %s", args[0])
			return nil
		}

		for _, r := range summary.Results {
			switch r.Status {
			case application.StatusAdded:
				report.Successf("Added new TOC to %s", r.Path)
			case application.StatusUpdated:
				report.Updatef("Updated existing TOC in %s", r.Path)
			case application.StatusSkipped:
				report.Warnf("No headers found in %s", r.Path)
			case application.StatusFailed:
				report.Errorf("Error %v", r.Err)
			}
		}

		report.Summaryf(summary.Succeeded(), summary.Total())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tocCmd)
	tocCmd.Flags().IntVar(&tocMaxDepth, "max-depth", 6, "maximum header depth to include")
	tocCmd.Flags().IntVar(&tocMinDepth, "min-depth", 1, "minimum header depth to include")
	tocCmd.Flags().StringVar(&tocInsertAfter, "insert-after", "", "insert the TOC after this text (for files without one)")
	tocCmd.Flags().BoolVar(&tocRecursive, "recursive", false, "process directories recursively")
	tocCmd.Flags().BoolVar(&tocUpdateReadme, "update-readme", false, "update the root README statistics instead of processing TOCs")
}
