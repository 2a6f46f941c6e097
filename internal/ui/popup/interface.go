package popup

import tea "github.com/charmbracelet/bubbletea"

// Placement is rendered dialog content anchored at a screen cell.
type Placement struct {
	Content string
	X, Y    int
}

// Layer is a dialog projected onto the shared overlay surface for one frame.
// Layers are rebuilt by their owners on every frame and must not be retained.
type Layer interface {
	// Key identifies the layer across frames.
	Key() string

	// Render lays the dialog out for a screen of the given size.
	Render(width, height int) Placement

	// HandleKey handles a key press while the layer is on top.
	HandleKey(msg tea.KeyMsg) tea.Cmd

	// HandleMouse handles a mouse event while the layer is on top.
	HandleMouse(msg tea.MouseMsg) tea.Cmd
}
