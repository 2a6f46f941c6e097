package testutil

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tidy/internal/ui/action"
	"github.com/llehouerou/tidy/internal/ui/popup"
)

// Default screen size used by LayerHarness.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// LayerHarness drives a component that projects a popup.Layer, simulating
// the overlay surface: keys and clicks go to the current layer, other
// messages go to the component's update function.
type LayerHarness struct {
	update func(tea.Msg) tea.Cmd
	layer  func() popup.Layer
	width  int
	height int
	cmds   []tea.Cmd
}

// NewLayerHarness creates a harness. layer returns nil while the component
// has nothing to show.
func NewLayerHarness(update func(tea.Msg) tea.Cmd, layer func() popup.Layer) *LayerHarness {
	return &LayerHarness{
		update: update,
		layer:  layer,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// SetSize sets the simulated screen size.
func (h *LayerHarness) SetSize(width, height int) {
	h.width, h.height = width, height
}

// Layer returns the current layer, or nil.
func (h *LayerHarness) Layer() popup.Layer {
	return h.layer()
}

// Render lays out the current layer. It returns the zero Placement when
// nothing is shown.
func (h *LayerHarness) Render() popup.Placement {
	l := h.layer()
	if l == nil {
		return popup.Placement{}
	}
	return l.Render(h.width, h.height)
}

// View returns the full frame: the layer placed on an empty dimmed screen.
func (h *LayerHarness) View() string {
	base := popup.Dim("", h.width, h.height)
	l := h.layer()
	if l == nil {
		return base
	}
	return popup.Place(base, l.Render(h.width, h.height), h.width)
}

func (h *LayerHarness) record(cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendMsg delivers a non-input message to the component.
func (h *LayerHarness) SendMsg(msg tea.Msg) tea.Cmd {
	return h.record(h.update(msg))
}

// SendKeyMsg delivers a key to the current layer.
func (h *LayerHarness) SendKeyMsg(msg tea.KeyMsg) tea.Cmd {
	l := h.layer()
	if l == nil {
		return nil
	}
	return h.record(l.HandleKey(msg))
}

// SendKey simulates typing the given runes.
func (h *LayerHarness) SendKey(key string) tea.Cmd {
	return h.SendKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, tab, etc.).
func (h *LayerHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendKeyMsg(tea.KeyMsg{Type: keyType})
}

// SendEnter sends the enter key.
func (h *LayerHarness) SendEnter() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEnter)
}

// SendEscape sends the escape key.
func (h *LayerHarness) SendEscape() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEscape)
}

// SendTab sends the tab key.
func (h *LayerHarness) SendTab() tea.Cmd {
	return h.SendSpecialKey(tea.KeyTab)
}

// Click renders the current layer, then sends a left press at (x, y).
func (h *LayerHarness) Click(x, y int) tea.Cmd {
	l := h.layer()
	if l == nil {
		return nil
	}
	l.Render(h.width, h.height)
	return h.record(l.HandleMouse(tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}))
}

// ClickText clicks the first cell of substr in the current frame.
// ok is false when substr is not on screen.
func (h *LayerHarness) ClickText(substr string) (cmd tea.Cmd, ok bool) {
	x, y, ok := FindCell(h.View(), substr)
	if !ok {
		return nil, false
	}
	return h.Click(x, y), true
}

// Commands returns every command produced so far.
func (h *LayerHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil.
func (h *LayerHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands forgets recorded commands.
func (h *LayerHarness) ClearCommands() {
	h.cmds = nil
}

// Resolve runs cmd to completion the way the runtime would: batches are
// expanded, resulting messages are fed back to the component and their
// follow-up commands are run too. Spinner ticks are dropped. The action
// messages produced along the way are returned in order.
func (h *LayerHarness) Resolve(cmd tea.Cmd) []action.Msg {
	var out []action.Msg
	for _, msg := range CollectMsgs(cmd) {
		switch msg := msg.(type) {
		case action.Msg:
			out = append(out, msg)
		case spinner.TickMsg:
		default:
			out = append(out, h.Resolve(h.SendMsg(msg))...)
		}
	}
	return out
}

// ExecuteCmd runs a command and returns its message, or nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// CollectMsgs runs cmd and flattens any batch into its messages.
func CollectMsgs(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil
	}
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, CollectMsgs(c)...)
	}
	return out
}
