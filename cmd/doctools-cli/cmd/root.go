package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"doctools/internal/adapters/console"
	"doctools/internal/adapters/filesystem"
	"doctools/internal/config"
	"doctools/internal/ports"
)

var (
	repoRoot string
	repo     ports.DocsRepository
	report   *console.Reporter
)

var rootCmd = &cobra.Command{
	Use:   "doctools-cli",
	Short: "CLI for maintaining markdown documentation repositories",
	Long: `doctools-cli maintains a markdown documentation repository laid out
as quick-reference/, detailed-guides/, platform-specific/ and a root
README.md.

It generates and refreshes Table of Contents blocks in markdown files,
builds the repository index, and recomputes the README statistics.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		repo = filesystem.NewRepository(repoRoot)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&repoRoot, "repo", "r", config.RepoRoot(), "path to the documentation repository root")
	report = console.NewReporter(os.Stdout)
}

// GetRepo returns the initialized repository
func GetRepo() ports.DocsRepository {
	return repo
}
