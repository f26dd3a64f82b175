package ports

// HTMLRenderer converts markdown source into HTML for previewing.
type HTMLRenderer interface {
	Render(markdown []byte) ([]byte, error)
}
