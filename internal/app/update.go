package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tidy/internal/errmsg"
	"github.com/llehouerou/tidy/internal/keymap"
	"github.com/llehouerou/tidy/internal/ui/action"
	"github.com/llehouerou/tidy/internal/ui/confirm"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.overlay.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg, tea.MouseMsg:
		if handled, cmd := m.overlay.Route(msg, m.layers()...); handled {
			return m, cmd
		}
		if key, ok := msg.(tea.KeyMsg); ok {
			return m.handleKey(key)
		}
		return m.handleMouse(msg.(tea.MouseMsg))

	case action.Msg:
		if msg.Source == confirm.Source {
			return m.handleConfirmAction(msg.Action)
		}
		return m, nil

	case playlistsLoadedMsg:
		return m.handlePlaylistsLoaded(msg)

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	// Handler outcomes and spinner frames belong to the dialogs.
	var cmds []tea.Cmd
	for _, g := range m.guards() {
		cmds = append(cmds, g.ctl.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case keymap.ActionReload:
		cmd := m.reload()
		return m, cmd
	case keymap.ActionMoveUp:
		m.cursor = max(m.cursor-1, 0)
	case keymap.ActionMoveDown:
		m.cursor = max(min(m.cursor+1, len(m.list)-1), 0)
	case keymap.ActionJumpStart:
		m.cursor = 0
	case keymap.ActionJumpEnd:
		m.cursor = max(len(m.list)-1, 0)
	case keymap.ActionDelete:
		m.openGuard(m.deleteDlg)
	case keymap.ActionClear:
		m.openGuard(m.clearDlg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cursor = max(m.cursor-1, 0)
	case tea.MouseButtonWheelDown:
		m.cursor = max(min(m.cursor+1, len(m.list)-1), 0)
	case tea.MouseButtonLeft:
		rows := m.listHeight(lipgloss.Height(m.renderFooter()))
		if i := msg.Y - listTop + m.offset(rows); msg.Y >= listTop && i < len(m.list) {
			m.cursor = i
		}
	}
	return m, nil
}

// openGuard opens g for the selected playlist. The target is captured
// now so a reload under the dialog cannot retarget it.
func (m Model) openGuard(g *guarded) {
	target, ok := m.selected()
	if !ok {
		return
	}
	g.target = target
	g.ctl.Open()
	m.log.Debug("dialog opened", "dialog", g.ctl.Key(), "playlist", target.ID)
}

func (m *Model) reload() tea.Cmd {
	m.loading = true
	m.loadSeq++
	return loadPlaylistsCmd(m.store, m.loadSeq)
}

func (m Model) handlePlaylistsLoaded(msg playlistsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loadSeq {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.log.Error("load playlists", "error", msg.err)
		m.overlay.ShowError(errmsg.Format(errmsg.OpPlaylistLoad, msg.err))
		return m, nil
	}
	m.list = msg.list
	m.cursor = max(min(m.cursor, len(m.list)-1), 0)
	return m, nil
}

func (m Model) handleConfirmAction(a action.Action) (tea.Model, tea.Cmd) {
	switch a := a.(type) {
	case confirm.Done:
		g := m.guardByKey(a.Key)
		if g == nil {
			return m, nil
		}
		statusCmd := m.setStatus(fmt.Sprintf(g.done, g.target.Name))
		loadCmd := m.reload()
		return m, tea.Batch(statusCmd, loadCmd)

	case confirm.Failed:
		g := m.guardByKey(a.Key)
		if g == nil {
			return m, nil
		}
		cause := a.Err
		var herr *confirm.HandlerError
		if errors.As(cause, &herr) {
			cause = herr.Err
		}
		m.log.Warn("guarded action failed", "dialog", a.Key, "id", a.ID, "error", a.Err)
		m.overlay.ShowError(errmsg.FormatWith(g.op, g.target.Name, cause))
		return m, nil

	case confirm.Canceled:
		return m, nil
	}
	return m, nil
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	if m.statusTTL <= 0 {
		return nil
	}
	return expireStatusCmd(m.statusTTL, m.statusSeq)
}
