// Package popupctl is the overlay surface every dialog is projected onto.
//
// Owners do not register their dialogs. On each frame they pass the layers
// they want shown, and the manager keeps the stacking order across frames:
// a layer that appears goes on top, a layer that is missing is dropped.
// Input is routed to the topmost layer only.
package popupctl

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tidy/internal/ui/mouse"
	"github.com/llehouerou/tidy/internal/ui/popup"
)

// Manager owns the overlay surface.
type Manager struct {
	order    stack
	frame    map[string]popup.Layer
	errorMsg string
	width    int
	height   int
	log      *slog.Logger
}

// New creates an empty surface. A nil logger discards.
func New(log *slog.Logger) *Manager {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		frame: make(map[string]popup.Layer),
		log:   log,
	}
}

// SetSize updates the dimensions for overlay rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Sync records the layers visible this frame. Nil layers are skipped.
func (p *Manager) Sync(layers ...popup.Layer) {
	clear(p.frame)
	keys := make([]string, 0, len(layers))
	for _, l := range layers {
		if l == nil {
			continue
		}
		p.frame[l.Key()] = l
		keys = append(keys, l.Key())
	}
	for _, k := range p.order.sync(p.frame, keys) {
		p.log.Debug("layer raised", "key", k)
	}
}

// Keys returns the visible layer keys from bottom to top.
func (p *Manager) Keys() []string {
	return append([]string(nil), p.order...)
}

// Top returns the topmost layer, or nil.
func (p *Manager) Top() popup.Layer {
	if len(p.order) == 0 {
		return nil
	}
	return p.frame[p.order[len(p.order)-1]]
}

// Active reports whether anything is drawn over the base view.
func (p *Manager) Active() bool {
	return p.errorMsg != "" || len(p.order) > 0
}

// ShowError displays an error notice above every layer.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the current error notice.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// ClearError dismisses the error notice.
func (p *Manager) ClearError() {
	p.errorMsg = ""
}

// Route syncs layers and delivers key and mouse input to the top of the
// surface. Returns (handled, cmd) where handled is true if the overlay
// consumed the message; the host must not act on a handled message.
func (p *Manager) Route(msg tea.Msg, layers ...popup.Layer) (bool, tea.Cmd) {
	p.Sync(layers...)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Error notice: dismiss on any key
		if p.errorMsg != "" {
			p.errorMsg = ""
			return true, nil
		}
		if top := p.Top(); top != nil {
			return true, top.HandleKey(msg)
		}

	case tea.MouseMsg:
		if p.errorMsg != "" {
			if mouse.IsLeftPress(msg) {
				p.errorMsg = ""
			}
			return true, nil
		}
		if top := p.Top(); top != nil {
			return true, top.HandleMouse(msg)
		}
	}
	return false, nil
}

// RenderOverlay syncs layers and draws them on the dimmed base view,
// bottom to top, then the error notice.
func (p *Manager) RenderOverlay(base string, layers ...popup.Layer) string {
	p.Sync(layers...)
	if !p.Active() {
		return base
	}

	out := popup.Dim(base, p.width, p.height)
	for _, k := range p.order {
		out = popup.Place(out, p.frame[k].Render(p.width, p.height), p.width)
	}
	if p.errorMsg != "" {
		out = popup.Place(out, p.renderError(), p.width)
	}
	return out
}

func (p *Manager) renderError() popup.Placement {
	pop := popup.New()
	pop.Title = "Error"
	pop.Content = p.errorMsg
	pop.Footer = "Press any key to dismiss"
	return pop.Render(p.width, p.height)
}
