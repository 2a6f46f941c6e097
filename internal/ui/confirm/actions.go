package confirm

// Source is the action.Msg source for every confirm action.
const Source = "confirm"

// Done reports that the handler succeeded and the dialog closed.
type Done struct {
	Key string // controller key
	ID  string // target id
}

// ActionType implements action.Action.
func (Done) ActionType() string { return "confirm.done" }

// Failed reports a handler failure. The dialog is still open.
type Failed struct {
	Key string
	ID  string
	Err error // always a *HandlerError
}

// ActionType implements action.Action.
func (Failed) ActionType() string { return "confirm.failed" }

// Canceled reports that the user dismissed the dialog from one of its controls.
type Canceled struct {
	Key string
	ID  string
}

// ActionType implements action.Action.
func (Canceled) ActionType() string { return "confirm.canceled" }
