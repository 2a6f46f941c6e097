package confirm

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tidy/internal/icons"
	"github.com/llehouerou/tidy/internal/ui/action"
	"github.com/llehouerou/tidy/internal/ui/mouse"
	"github.com/llehouerou/tidy/internal/ui/popup"
	"github.com/llehouerou/tidy/internal/ui/render"
	"github.com/llehouerou/tidy/internal/ui/styles"
)

// ControlID identifies an interactive control of the dialog.
type ControlID string

const (
	ControlClose   ControlID = "close"
	ControlCancel  ControlID = "cancel"
	ControlConfirm ControlID = "confirm"
)

// Hit region ids besides the controls.
const (
	regionBackdrop = "backdrop"
	regionBox      = "box"
)

const (
	// border (1) + padding (2) on each side
	boxChromeX = 6
	minInner   = 24
)

// Control describes one control as rendered for the current frame.
type Control struct {
	ID       ControlID
	Label    string
	Disabled bool
	Loading  bool
	Focused  bool
}

// Dialog is the visible dialog for one frame. It is built by
// Controller.Dialog and must not outlive the frame.
type Dialog struct {
	c *Controller
	p Params
}

var _ popup.Layer = (*Dialog)(nil)

// Key implements popup.Layer.
func (d *Dialog) Key() string { return d.c.key }

func (d *Dialog) disabled() bool {
	return d.c.busy || d.p.ExternalBusy
}

// Controls returns the close, cancel and confirm controls in that order.
func (d *Dialog) Controls() []Control {
	off := d.disabled()
	return []Control{
		{ID: ControlClose, Label: "Close", Disabled: off},
		{ID: ControlCancel, Label: "Cancel", Disabled: off, Focused: d.c.focus == ControlCancel},
		{ID: ControlConfirm, Label: d.c.confirmLabel, Disabled: off, Loading: off, Focused: d.c.focus == ControlConfirm},
	}
}

// Render lays the dialog out centered on the screen and records the hit
// regions used by HandleMouse.
func (d *Dialog) Render(width, height int) popup.Placement {
	c := d.c
	t := styles.T()
	s := t.S()

	outer := min(c.width, width-2)
	inner := max(outer-boxChromeX, minInner)

	controls := d.Controls()
	closeBtn := d.renderControl(controls[0])
	cancelBtn := d.renderControl(controls[1])
	confirmBtn := d.renderControl(controls[2])

	titleWidth := inner - lipgloss.Width(closeBtn) - 1
	title := render.Truncate(icons.WithIcon(icons.Warning(), c.title), titleWidth)
	header := render.Row(styles.ApplyBoldGradient(title, t.Error, t.Warning), closeBtn, inner)

	label := render.Truncate(d.p.TargetLabel, inner)
	body := s.Base.Width(inner).Render(c.describe(label))
	bodyLines := strings.Split(body, "\n")

	buttons := cancelBtn + " " + confirmBtn
	footer := render.Row("", buttons, inner)

	hint := "y confirm · n cancel · tab switch"
	if d.disabled() {
		hint = "working…"
	}
	hint = s.Subtle.Render(render.Truncate(hint, inner))

	lines := make([]string, 0, len(bodyLines)+5)
	lines = append(lines, header, "")
	lines = append(lines, bodyLines...)
	footerRow := len(lines) + 1
	lines = append(lines, "", footer, hint)
	for i, line := range lines {
		lines[i] = padTo(line, inner)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
	p := popup.Center(box, width, height)

	// Content starts inside the border and horizontal padding.
	ox, oy := p.X+3, p.Y+1
	c.hits.Clear()
	c.hits.AddRect(regionBackdrop, 0, 0, width, height, nil)
	c.hits.AddRect(regionBox, p.X, p.Y, lipgloss.Width(box), lipgloss.Height(box), nil)

	closeW := lipgloss.Width(closeBtn)
	c.hits.AddRect(string(ControlClose), ox+inner-closeW, oy, closeW, 1, nil)

	buttonsX := ox + inner - lipgloss.Width(buttons)
	cancelW := lipgloss.Width(cancelBtn)
	c.hits.AddRect(string(ControlCancel), buttonsX, oy+footerRow, cancelW, 1, nil)
	c.hits.AddRect(string(ControlConfirm), buttonsX+cancelW+1, oy+footerRow, lipgloss.Width(confirmBtn), 1, nil)

	return p
}

func (d *Dialog) renderControl(ctl Control) string {
	s := styles.T().S()

	switch ctl.ID {
	case ControlClose:
		if ctl.Disabled {
			return s.Subtle.Render(icons.Close())
		}
		return s.Muted.Render(icons.Close())

	case ControlConfirm:
		icon := icons.Trash()
		if ctl.Loading {
			icon = d.c.spinner.View()
		}
		label := icons.WithIcon(icon, ctl.Label)
		switch {
		case ctl.Disabled:
			return s.ButtonDisabled.Render(label)
		case ctl.Focused:
			return s.ButtonDangerFocused.Render(label)
		}
		return s.ButtonDanger.Render(label)
	}

	switch {
	case ctl.Disabled:
		return s.ButtonDisabled.Render(ctl.Label)
	case ctl.Focused:
		return s.ButtonFocused.Render(ctl.Label)
	}
	return s.Button.Render(ctl.Label)
}

func padTo(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// HandleKey implements popup.Layer. Every key is consumed.
func (d *Dialog) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return d.dismiss()
	case "n", "N":
		return d.activate(ControlCancel)
	case "y", "Y":
		return d.activate(ControlConfirm)
	case "enter", " ":
		return d.activate(d.c.focus)
	case "tab", "shift+tab", "left", "right", "h", "l":
		if !d.disabled() {
			d.toggleFocus()
		}
	}
	return nil
}

// HandleMouse implements popup.Layer. Every mouse event is consumed.
func (d *Dialog) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if !mouse.IsLeftPress(msg) {
		return nil
	}
	hit := d.c.hits.Test(msg.X, msg.Y)
	if hit == nil {
		return nil
	}

	switch hit.ID {
	case regionBackdrop:
		if !d.c.closeOnBackdrop {
			return nil
		}
		return d.dismiss()
	case regionBox:
		return nil
	}

	id := ControlID(hit.ID)
	if id != ControlClose && !d.disabled() {
		d.c.focus = id
	}
	return d.activate(id)
}

func (d *Dialog) toggleFocus() {
	if d.c.focus == ControlConfirm {
		d.c.focus = ControlCancel
	} else {
		d.c.focus = ControlConfirm
	}
}

// dismiss closes through the controller guard only, so external busy does
// not block it.
func (d *Dialog) dismiss() tea.Cmd {
	d.c.Close()
	if d.c.visible {
		return nil
	}
	return action.Cmd(Source, Canceled{Key: d.c.key, ID: d.p.TargetID})
}

func (d *Dialog) activate(id ControlID) tea.Cmd {
	if d.disabled() {
		return nil
	}
	switch id {
	case ControlClose, ControlCancel:
		return d.dismiss()
	case ControlConfirm:
		return d.c.Confirm(d.p.TargetID, d.p.OnConfirm)
	}
	return nil
}
