// Package action defines how UI components report outcomes to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is an outcome reported by a UI component.
// ActionType returns a stable identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that produced it.
type Msg struct {
	Source string // component name, e.g. "confirm"
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command that delivers the action as a Msg.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
