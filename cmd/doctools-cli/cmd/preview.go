package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"doctools/internal/adapters/renderer"
	"doctools/internal/application/commands"
)

var (
	previewMaxDepth int
	previewMinDepth int
	previewHTML     bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Preview a document without writing anything",
	Long: `Print a document's frontmatter, the TOC block a toc run would
produce, and the body rendered to HTML.

Examples:
  doctools-cli preview detailed-guides/networking.md
  doctools-cli preview guide.md --html=false`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		previewCmd := commands.NewPreviewCommand(GetRepo(), renderer.NewGoldmark(), args[0])
		previewCmd.MaxDepth = previewMaxDepth
		previewCmd.MinDepth = previewMinDepth
		previewCmd.RenderHTML = previewHTML

		result, err := previewCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Path: %s\n\n", result.Path)

		if len(result.FrontMatter) > 0 {
			fmt.Println("Frontmatter:")
			for key, value := range result.FrontMatter {
				fmt.Printf("  %s: %v\n", key, value)
			}
			fmt.Println()
		}

		if result.TOC == "" {
			report.Warnf("No headers found in %s", args[0])
		} else {
			fmt.Println(result.TOC)
		}

		if previewHTML {
			fmt.Printf("Rendered HTML:\n%s\n", result.HTML)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVar(&previewMaxDepth, "max-depth", 6, "maximum header depth to include in the TOC")
	previewCmd.Flags().IntVar(&previewMinDepth, "min-depth", 1, "minimum header depth to include in the TOC")
	previewCmd.Flags().BoolVar(&previewHTML, "html", true, "render the body to HTML")
}
