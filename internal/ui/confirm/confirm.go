// Package confirm provides a dialog that guards destructive actions.
//
// A Controller owns two flags: visible and busy. The caller opens the
// dialog, and the confirm control runs a caller-supplied Handler while the
// dialog is busy. Busy blocks dismissal and re-submission until the handler
// settles:
//
//	Idle --Open--> Open --Confirm--> Confirming --ok--> Idle
//	                ^ |                   |
//	                | +--Close--> Idle    +--error--> Open
//
// The handler runs inside a tea.Cmd, off the event loop. Every state change
// happens on the event loop, in Open, Close, Confirm and Update. The
// outcome is reported to the caller as an action.Msg carrying Done or Failed.
package confirm

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tidy/internal/ui/action"
	"github.com/llehouerou/tidy/internal/ui/mouse"
	"github.com/llehouerou/tidy/internal/ui/popup"
	"github.com/llehouerou/tidy/internal/ui/styles"
)

// State is the controller's position in its lifecycle.
type State int

const (
	Idle State = iota
	Open
	Confirming
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Open:
		return "open"
	case Confirming:
		return "confirming"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Handler performs the guarded action for the target id.
// A nil Handler succeeds immediately.
type Handler func(id string) error

// Params describe one invocation of the dialog. Callers build them fresh
// for every render and input dispatch; the controller never keeps them.
type Params struct {
	TargetLabel  string
	TargetID     string
	ExternalBusy bool // caller-side work that must also block the controls
	OnConfirm    Handler
}

// settledMsg carries a handler outcome back to the controller that started it.
type settledMsg struct {
	owner int64
	seq   uint64
	id    string
	err   error
}

var owners atomic.Int64

// Controller is the confirm dialog state machine.
type Controller struct {
	key   string
	owner int64

	visible bool
	busy    bool
	seq     uint64
	focus   ControlID

	spinner spinner.Model
	hits    *mouse.HitMap

	title           string
	confirmLabel    string
	describe        func(label string) string
	width           int
	closeOnBackdrop bool
	log             *slog.Logger
}

// New creates a hidden, idle controller. The key names the controller in
// the actions it reports and identifies its layer on the overlay surface.
func New(key string, opts ...Option) *Controller {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = styles.T().S().Error

	c := &Controller{
		key:             key,
		owner:           owners.Add(1),
		focus:           ControlCancel,
		spinner:         s,
		hits:            mouse.NewHitMap(),
		title:           "Are you sure?",
		confirmLabel:    "Delete",
		describe:        defaultDescription,
		width:           DefaultWidth,
		closeOnBackdrop: true,
		log:             slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the controller key.
func (c *Controller) Key() string { return c.key }

// Visible reports whether the dialog is shown.
func (c *Controller) Visible() bool { return c.visible }

// Busy reports whether a handler is in flight.
func (c *Controller) Busy() bool { return c.busy }

// State returns the current lifecycle state.
func (c *Controller) State() State {
	switch {
	case c.busy:
		return Confirming
	case c.visible:
		return Open
	}
	return Idle
}

// Open shows the dialog. Opening a visible dialog does nothing.
func (c *Controller) Open() {
	if c.visible {
		return
	}
	c.visible = true
	c.focus = ControlCancel
	c.log.Debug("dialog opened", "key", c.key)
}

// Close hides the dialog unless a handler is in flight.
func (c *Controller) Close() {
	if c.busy {
		c.log.Debug("close ignored while busy", "key", c.key)
		return
	}
	if !c.visible {
		return
	}
	c.visible = false
	c.hits.Clear()
	c.log.Debug("dialog closed", "key", c.key)
}

// Confirm marks the dialog busy and returns the command that runs h(id).
// It returns nil when the dialog is hidden or a handler is already in
// flight. The outcome comes back through Update.
func (c *Controller) Confirm(id string, h Handler) tea.Cmd {
	if !c.visible || c.busy {
		return nil
	}
	c.busy = true
	c.seq++
	c.log.Info("confirm started", "key", c.key, "id", id)
	return tea.Batch(runHandler(c.owner, c.seq, id, h), c.spinner.Tick)
}

// runHandler always yields a settledMsg, including when h panics.
func runHandler(owner int64, seq uint64, id string, h Handler) tea.Cmd {
	return func() (msg tea.Msg) {
		settled := settledMsg{owner: owner, seq: seq, id: id}
		defer func() {
			if r := recover(); r != nil {
				settled.err = &HandlerError{ID: id, Err: fmt.Errorf("%w: %v", ErrHandlerPanicked, r)}
			}
			msg = settled
		}()
		if h != nil {
			if err := h(id); err != nil {
				settled.err = &HandlerError{ID: id, Err: err}
			}
		}
		return settled
	}
}

// Update consumes the controller's own handler outcomes and spinner
// frames. Other messages are ignored.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case settledMsg:
		if msg.owner != c.owner || msg.seq != c.seq || !c.busy {
			return nil
		}
		return c.settle(msg)

	case spinner.TickMsg:
		if !c.busy {
			return nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (c *Controller) settle(msg settledMsg) tea.Cmd {
	c.busy = false

	if msg.err != nil {
		c.log.Warn("confirm failed", "key", c.key, "id", msg.id, "error", msg.err)
		return action.Cmd(Source, Failed{Key: c.key, ID: msg.id, Err: msg.err})
	}

	c.visible = false
	c.hits.Clear()
	c.log.Info("confirm done", "key", c.key, "id", msg.id)
	return action.Cmd(Source, Done{Key: c.key, ID: msg.id})
}

// Dialog returns the visible dialog for p, or nil while hidden.
func (c *Controller) Dialog(p Params) *Dialog {
	if !c.visible {
		return nil
	}
	return &Dialog{c: c, p: p}
}

// Layer is Dialog as a popup.Layer. It returns an untyped nil while hidden
// so callers can compare against nil.
func (c *Controller) Layer(p Params) popup.Layer {
	if d := c.Dialog(p); d != nil {
		return d
	}
	return nil
}
