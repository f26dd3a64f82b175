package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"doctools/internal/adapters/editor"
	"doctools/internal/adapters/filesystem"
	"doctools/internal/adapters/tui"
	"doctools/internal/config"
)

func main() {
	repoFlag := flag.String("repo", config.RepoRoot(), "path to the documentation repository root")
	flag.Parse()

	// Initialize adapters
	repo := filesystem.NewRepository(*repoFlag)
	editorOpener := editor.NewOpener()

	// Create and run TUI app
	app := tui.NewApp(repo, editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
