package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tidy/internal/app/popupctl"
	"github.com/llehouerou/tidy/internal/config"
	"github.com/llehouerou/tidy/internal/errmsg"
	"github.com/llehouerou/tidy/internal/keymap"
	"github.com/llehouerou/tidy/internal/logging"
	"github.com/llehouerou/tidy/internal/playlists"
	"github.com/llehouerou/tidy/internal/ui/confirm"
	"github.com/llehouerou/tidy/internal/ui/popup"
)

// Dialog keys, also used as the confirm controller keys.
const (
	DialogDelete = "delete"
	DialogClear  = "clear"
)

// guarded is one destructive action: its dialog, the playlist it was opened
// for, and the store call it runs.
type guarded struct {
	ctl    *confirm.Controller
	op     errmsg.Op
	done   string // status line format, gets the playlist name
	target playlists.Summary
	run    confirm.Handler
}

// Model is the root application model.
type Model struct {
	store   *playlists.Store
	log     *slog.Logger
	keys    *keymap.Resolver
	help    help.Model
	overlay *popupctl.Manager

	deleteDlg *guarded
	clearDlg  *guarded

	list    []playlists.Summary
	cursor  int
	loading bool
	loadSeq int

	status    string
	statusSeq int
	statusTTL time.Duration // zero keeps the status until replaced

	width  int
	height int
}

// New creates the application model. The first list load starts in Init.
func New(store *playlists.Store, cfg config.ConfirmConfig) Model {
	log := logging.For(logging.CompApp)
	closeOnBackdrop := cfg.CloseOnBackdrop == nil || *cfg.CloseOnBackdrop
	timeout := cfg.Timeout()

	newController := func(key string, opts ...confirm.Option) *confirm.Controller {
		opts = append(opts,
			confirm.WithCloseOnBackdrop(closeOnBackdrop),
			confirm.WithLogger(logging.For(logging.CompConfirm)),
		)
		return confirm.New(key, opts...)
	}

	return Model{
		store:   store,
		log:     log,
		keys:    keymap.NewResolver(keymap.Bindings),
		help:    help.New(),
		overlay: popupctl.New(logging.For(logging.CompOverlay)),
		deleteDlg: &guarded{
			ctl:  newController(DialogDelete, confirm.WithTitle("Delete playlist?")),
			op:   errmsg.OpPlaylistDelete,
			done: "Deleted %q",
			run:  storeHandler(timeout, store.Delete),
		},
		clearDlg: &guarded{
			ctl: newController(DialogClear,
				confirm.WithTitle("Clear playlist?"),
				confirm.WithConfirmLabel("Clear"),
				confirm.WithDescription(func(label string) string {
					return fmt.Sprintf("Every track will be removed from %q. The playlist itself is kept.", label)
				}),
			),
			op:   errmsg.OpPlaylistClear,
			done: "Cleared %q",
			run:  storeHandler(timeout, store.ClearTracks),
		},
		loading:   true,
		loadSeq:   1,
		statusTTL: statusTTL,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadPlaylistsCmd(m.store, m.loadSeq)
}

func (m Model) guards() []*guarded {
	return []*guarded{m.deleteDlg, m.clearDlg}
}

func (m Model) guardByKey(key string) *guarded {
	for _, g := range m.guards() {
		if g.ctl.Key() == key {
			return g
		}
	}
	return nil
}

func (m Model) params(g *guarded) confirm.Params {
	return confirm.Params{
		TargetLabel:  g.target.Name,
		TargetID:     playlists.FormatID(g.target.ID),
		ExternalBusy: m.loading,
		OnConfirm:    g.run,
	}
}

// layers returns the dialogs to project onto the overlay this frame.
func (m Model) layers() []popup.Layer {
	var out []popup.Layer
	for _, g := range m.guards() {
		if l := g.ctl.Layer(m.params(g)); l != nil {
			out = append(out, l)
		}
	}
	return out
}

// selected returns the playlist under the cursor.
func (m Model) selected() (playlists.Summary, bool) {
	if m.cursor < 0 || m.cursor >= len(m.list) {
		return playlists.Summary{}, false
	}
	return m.list[m.cursor], true
}

// Playlists returns the playlists currently listed.
func (m Model) Playlists() []playlists.Summary {
	return m.list
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// Overlay returns the overlay surface.
func (m Model) Overlay() *popupctl.Manager {
	return m.overlay
}

// Dialog returns the controller for DialogDelete or DialogClear.
func (m Model) Dialog(key string) *confirm.Controller {
	if g := m.guardByKey(key); g != nil {
		return g.ctl
	}
	return nil
}
