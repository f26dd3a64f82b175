package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"doctools/internal/adapters/tui/views"
	"doctools/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewDocList ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	repo   ports.DocsRepository
	editor ports.EditorOpener

	state   ViewState
	doclist *views.DocListModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.DocsRepository, editor ports.EditorOpener) *App {
	return &App{
		repo:    repo,
		editor:  editor,
		state:   ViewDocList,
		doclist: views.NewDocListModel(repo),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.doclist.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.doclist.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewDocList
		return a, a.doclist.Reload()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		// Content may have changed under us
		return a, a.doclist.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewDocList:
		_, cmd = a.doclist.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}
	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err}
	})
}

// View renders the application
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.doclist.View()
	}
}
