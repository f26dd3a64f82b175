package ports

import "os/exec"

// EditorOpener opens documents in the user's external editor.
type EditorOpener interface {
	// OpenFile opens path in the preferred editor ($EDITOR, then $VISUAL,
	// then common fallbacks) and blocks until it exits.
	OpenFile(path string) error

	// Command returns the exec.Cmd that would open path, for handing to
	// bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
