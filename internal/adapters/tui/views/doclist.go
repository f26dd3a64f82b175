package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"doctools/internal/adapters/tui/styles"
	"doctools/internal/application/commands"
	"doctools/internal/domain"
	"doctools/internal/ports"
)

// DocListKeyMap defines key bindings for the document list view
type DocListKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Update    key.Binding
	UpdateAll key.Binding
	Copy      key.Binding
	Edit      key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var DocListKeys = DocListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Update: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "update TOC"),
	),
	UpdateAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "update all"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy TOC"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// DocEntry is one markdown file in the list with its TOC status.
type DocEntry struct {
	Path    string // absolute
	RelPath string
	Headers int
	HasTOC  bool
	ReadErr bool
}

// DocListModel is the model for the document list view
type DocListModel struct {
	ViewState

	repo   ports.DocsRepository
	docs   []DocEntry
	cursor int
}

// NewDocListModel creates a new document list model
func NewDocListModel(repo ports.DocsRepository) *DocListModel {
	return &DocListModel{repo: repo}
}

// Init initializes the document list
func (m *DocListModel) Init() tea.Cmd {
	return m.loadDocs
}

// Reload rescans the repository
func (m *DocListModel) Reload() tea.Cmd {
	return m.loadDocs
}

func (m *DocListModel) loadDocs() tea.Msg {
	files, err := m.repo.MarkdownFiles(m.repo.Root(), true)
	if err != nil {
		return errMsg{err}
	}

	docs := make([]DocEntry, 0, len(files))
	for _, file := range files {
		entry := DocEntry{Path: file}

		if rel, err := m.repo.RelPath(file); err == nil {
			entry.RelPath = rel
		} else {
			entry.RelPath = file
		}

		content, err := m.repo.ReadDocument(file)
		if err != nil {
			entry.ReadErr = true
		} else {
			entry.Headers = len(domain.ExtractHeaders(content))
			entry.HasTOC = domain.HasTOC(content)
		}
		docs = append(docs, entry)
	}
	return docsLoadedMsg{docs}
}

type docsLoadedMsg struct {
	docs []DocEntry
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Update handles messages for the document list
func (m *DocListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case docsLoadedMsg:
		m.docs = msg.docs
		if m.cursor >= len(m.docs) {
			m.cursor = len(m.docs) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.Reload()

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, DocListKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, DocListKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, DocListKeys.Down):
			if m.cursor < len(m.docs)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, DocListKeys.Update):
			if doc := m.selectedDoc(); doc != nil {
				return m, m.updateTOC(doc.Path)
			}
			return m, nil

		case key.Matches(msg, DocListKeys.UpdateAll):
			return m, m.updateAll()

		case key.Matches(msg, DocListKeys.Copy):
			if doc := m.selectedDoc(); doc != nil {
				return m, m.copyTOC(doc)
			}
			return m, nil

		case key.Matches(msg, DocListKeys.Edit):
			if doc := m.selectedDoc(); doc != nil {
				path := doc.Path
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, DocListKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, DocListKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *DocListModel) updateTOC(path string) tea.Cmd {
	return func() tea.Msg {
		summary, err := commands.NewUpdateTOCCommand(m.repo, path).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		if summary.Succeeded() == 0 {
			return errMsg{fmt.Errorf("no headers found in %s", path)}
		}
		return successMsg{fmt.Sprintf("Updated TOC in %s", path)}
	}
}

func (m *DocListModel) updateAll() tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewUpdateTOCCommand(m.repo, m.repo.Root())
		cmd.Recursive = true
		summary, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{fmt.Sprintf("Processed %d/%d files", summary.Succeeded(), summary.Total())}
	}
}

func (m *DocListModel) copyTOC(doc *DocEntry) tea.Cmd {
	return func() tea.Msg {
		content, err := m.repo.ReadDocument(doc.Path)
		if err != nil {
			return errMsg{err}
		}
		headers := domain.ExtractHeaders(content)
		toc := domain.RenderTOC(headers, 6, 1)
		if toc == "" {
			return errMsg{fmt.Errorf("no headers found in %s", doc.RelPath)}
		}
		if err := clipboard.WriteAll(toc); err != nil {
			return errMsg{err}
		}
		return successMsg{fmt.Sprintf("Copied TOC for %s", doc.RelPath)}
	}
}

func (m *DocListModel) selectedDoc() *DocEntry {
	if m.cursor >= 0 && m.cursor < len(m.docs) {
		return &m.docs[m.cursor]
	}
	return nil
}

// View renders the document list
func (m *DocListModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Doctools"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Documentation Repository Browser"))
	b.WriteString("\n\n")

	if len(m.docs) == 0 {
		b.WriteString(styles.MutedText.Render("No markdown files found"))
		b.WriteString("\n")
	}

	for i, doc := range m.docs {
		b.WriteString(m.renderDoc(doc, i == m.cursor))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("enter update • a update all • y copy • e edit • r reload • ? help • q quit"))

	return styles.App.Render(b.String())
}

func (m *DocListModel) renderDoc(doc DocEntry, selected bool) string {
	status := fmt.Sprintf("%-12s", DocStatus(doc))

	if selected {
		return styles.DocSelected.Render(fmt.Sprintf("> %s %s", status, doc.RelPath))
	}

	var style lipgloss.Style
	switch {
	case doc.ReadErr:
		style = styles.ErrorMsg
	case doc.Headers == 0:
		style = styles.DocNoHeaders
	case doc.HasTOC:
		style = styles.DocHasTOC
	default:
		style = styles.DocNoTOC
	}
	return "  " + style.Render(status) + " " + categoryStyle(doc.RelPath).Render(doc.RelPath)
}

// categoryStyle colors a path by its category directory. Files outside the
// three category directories keep the plain row style.
func categoryStyle(relPath string) lipgloss.Style {
	dir, _, ok := strings.Cut(relPath, "/")
	if !ok {
		return styles.DocRow
	}
	for _, c := range domain.Categories() {
		if dir == string(c) {
			return lipgloss.NewStyle().Foreground(styles.CategoryColor(dir))
		}
	}
	return styles.DocRow
}

// DocStatus summarizes a document's TOC state for display.
func DocStatus(doc DocEntry) string {
	switch {
	case doc.ReadErr:
		return "unreadable"
	case doc.Headers == 0:
		return "no headers"
	case doc.HasTOC:
		return "✓ toc"
	default:
		return "· no toc"
	}
}

