// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionReload Action = "reload"

	// List navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Destructive actions, each guarded by a confirm dialog
	ActionDelete Action = "delete" // d - delete playlist
	ActionClear  Action = "clear"  // c - remove every track
)

// Binding maps keys to an action for dispatch and help.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global" or "list"
}

// Bindings is the application key map.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionReload, []string{"r"}, "Reload playlists", "global"},

	// List
	{ActionMoveUp, []string{"k", "up"}, "Move up", "list"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "list"},
	{ActionJumpStart, []string{"g", "home"}, "First playlist", "list"},
	{ActionJumpEnd, []string{"G", "end"}, "Last playlist", "list"},
	{ActionDelete, []string{"d", "delete"}, "Delete playlist", "list"},
	{ActionClear, []string{"c"}, "Clear tracks", "list"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range Bindings {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}
