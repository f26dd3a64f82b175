package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"doctools/internal/application/commands"
	"doctools/internal/domain"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Print the repository index",
	Long: `Build and print the category-to-links index of every issue in the
repository.

Example:
  doctools-cli index`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		buildCmd := commands.NewBuildIndexCommand(GetRepo())
		result, err := buildCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, w := range result.Warnings {
			report.Warnf("%v", w)
		}

		for _, category := range domain.Categories() {
			links := result.Index[category]
			fmt.Printf("%s (%d)\n", category, len(links))
			for _, link := range links {
				fmt.Printf("  - %s\n", link)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
