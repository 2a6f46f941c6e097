package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tidy/internal/config"
	"github.com/llehouerou/tidy/internal/playlists"
	"github.com/llehouerou/tidy/internal/state"
	"github.com/llehouerou/tidy/internal/ui/testutil"
)

func setupModel(t *testing.T, names ...string) (Model, *playlists.Store) {
	t.Helper()
	st, err := state.Open(state.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	store := playlists.New(st.DB())
	for _, name := range names {
		id, err := store.Create(name)
		require.NoError(t, err)
		require.NoError(t, store.AddTracks(id, "/music/"+name+"/01.flac", "/music/"+name+"/02.flac"))
	}

	m := New(store, config.ConfirmConfig{TimeoutSecs: 5})
	m.statusTTL = 0
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return run(m, m.Init()), store
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// run executes cmd the way the runtime would, feeding every resulting
// message back to the model. Spinner ticks are dropped.
func run(m Model, cmd tea.Cmd) Model {
	for _, msg := range testutil.CollectMsgs(cmd) {
		switch msg.(type) {
		case spinner.TickMsg, tea.QuitMsg:
			continue
		}
		var next tea.Cmd
		m, next = update(m, msg)
		m = run(m, next)
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = update(m, keyMsg(k))
		m = run(m, cmd)
	}
	return m
}

func names(list []playlists.Summary) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Name
	}
	return out
}

func TestInit_LoadsPlaylists(t *testing.T) {
	m, _ := setupModel(t, "Workout", "Chill", "Road trip")

	assert.Equal(t, []string{"Chill", "Road trip", "Workout"}, names(m.Playlists()))
	assert.False(t, m.loading)
	assert.False(t, m.Overlay().Active())
}

func TestDelete_ConfirmRemovesPlaylist(t *testing.T) {
	m, store := setupModel(t, "Chill", "Road trip")

	m = press(m, "d")
	dlg := m.Dialog(DialogDelete)
	require.True(t, dlg.Visible())
	assert.Contains(t, testutil.StripANSI(m.View()), "Delete playlist?")

	m = press(m, "y")

	assert.False(t, dlg.Visible())
	assert.False(t, dlg.Busy())
	assert.Equal(t, `Deleted "Chill"`, m.Status())
	assert.Equal(t, []string{"Road trip"}, names(m.Playlists()))

	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestClear_ConfirmKeepsPlaylist(t *testing.T) {
	m, store := setupModel(t, "Chill")

	m = press(m, "c", "tab", "enter")

	assert.False(t, m.Dialog(DialogClear).Visible())
	assert.Equal(t, `Cleared "Chill"`, m.Status())
	require.Len(t, m.Playlists(), 1)
	assert.Equal(t, 0, m.Playlists()[0].TrackCount)

	n, err := store.TrackCount(m.Playlists()[0].ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDelete_CancelKeepsPlaylist(t *testing.T) {
	m, _ := setupModel(t, "Chill")

	m = press(m, "d", "n")

	assert.False(t, m.Dialog(DialogDelete).Visible())
	assert.Empty(t, m.Status())
	assert.Len(t, m.Playlists(), 1)
}

func TestDelete_FailureKeepsDialogOpen(t *testing.T) {
	m, store := setupModel(t, "Chill", "Road trip")
	// Removed behind the list's back, so the dialog targets a stale row.
	require.NoError(t, store.Delete(context.Background(), m.Playlists()[0].ID))

	m = press(m, "d", "y")

	dlg := m.Dialog(DialogDelete)
	assert.True(t, dlg.Visible(), "dialog must stay open for retry or cancel")
	assert.False(t, dlg.Busy())
	assert.Empty(t, m.Status())
	assert.Contains(t, m.Overlay().ErrorMsg(), "Failed to delete playlist 'Chill'")
	assert.Contains(t, m.Overlay().ErrorMsg(), "not found")
	assert.Contains(t, testutil.StripANSI(m.View()), "Press any key to dismiss")

	// First key dismisses the notice only.
	m = press(m, "x")
	assert.Empty(t, m.Overlay().ErrorMsg())
	assert.True(t, dlg.Visible())

	m = press(m, "esc")
	assert.False(t, dlg.Visible())
}

func TestDialog_BlockedWhileLoading(t *testing.T) {
	m, _ := setupModel(t, "Chill")

	m, load := update(m, keyMsg("r"))
	require.True(t, m.loading)

	m = press(m, "d")
	dlg := m.Dialog(DialogDelete)
	require.True(t, dlg.Visible())

	m = press(m, "y")
	assert.False(t, dlg.Busy(), "confirm must be disabled while the list loads")
	assert.True(t, dlg.Visible())
	assert.Contains(t, testutil.StripANSI(m.View()), "working…")

	m = run(m, load)
	require.False(t, m.loading)

	m = press(m, "y")
	assert.False(t, dlg.Visible())
	assert.Empty(t, m.Playlists())
}

func TestDialogs_ShareOneSurface(t *testing.T) {
	m, _ := setupModel(t, "Chill", "Road trip")

	m = press(m, "d")
	m.openGuard(m.clearDlg)
	m.View()

	assert.Equal(t, []string{DialogDelete, DialogClear}, m.Overlay().Keys())

	// Input reaches the most recently opened dialog only.
	m = press(m, "esc")
	assert.False(t, m.Dialog(DialogClear).Visible())
	assert.True(t, m.Dialog(DialogDelete).Visible())

	m = press(m, "y")
	assert.False(t, m.Dialog(DialogDelete).Visible())
	assert.Equal(t, []string{"Road trip"}, names(m.Playlists()))
}

func TestNavigation(t *testing.T) {
	m, _ := setupModel(t, "A", "B", "C")

	m = press(m, "j", "j", "j")
	assert.Equal(t, 2, m.cursor)
	m = press(m, "k")
	assert.Equal(t, 1, m.cursor)
	m = press(m, "g")
	assert.Equal(t, 0, m.cursor)
	m = press(m, "G")
	assert.Equal(t, 2, m.cursor)
}

func TestMouse_SelectsRow(t *testing.T) {
	m, _ := setupModel(t, "A", "B", "C")

	m, _ = update(m, tea.MouseMsg{
		X: 4, Y: listTop + 1,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, 1, m.cursor)

	m, _ = update(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 2, m.cursor)
}

func TestDelete_EmptyListOpensNothing(t *testing.T) {
	m, _ := setupModel(t)

	m = press(m, "d")

	assert.False(t, m.Dialog(DialogDelete).Visible())
	assert.Contains(t, testutil.StripANSI(m.View()), "No playlists")
}

func TestView_ListsRows(t *testing.T) {
	m, _ := setupModel(t, "Chill")

	frame := testutil.StripANSI(m.View())
	assert.Contains(t, frame, "Chill")
	assert.Contains(t, frame, "2 tracks")
	assert.Contains(t, frame, "1 playlist")
}

func TestView_ShowsLastUse(t *testing.T) {
	m, store := setupModel(t, "Chill", "Road trip")
	require.NoError(t, store.MarkUsed(m.Playlists()[1].ID))

	m = press(m, "r")

	frame := testutil.StripANSI(m.View())
	assert.Contains(t, testutil.FindLine(frame, "Road trip"), "used ")
	assert.Contains(t, testutil.FindLine(frame, "Chill"), "created ")
}

func TestQuit(t *testing.T) {
	m, _ := setupModel(t)

	_, cmd := update(m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestStoreHandler(t *testing.T) {
	t.Run("parses id", func(t *testing.T) {
		var got int64
		h := storeHandler(0, func(_ context.Context, id int64) error {
			got = id
			return nil
		})
		require.NoError(t, h("42"))
		assert.Equal(t, int64(42), got)
	})

	t.Run("bad id", func(t *testing.T) {
		h := storeHandler(0, func(context.Context, int64) error {
			t.Fatal("op must not run")
			return nil
		})
		assert.Error(t, h("abc"))
	})

	t.Run("timeout", func(t *testing.T) {
		h := storeHandler(10*time.Millisecond, func(ctx context.Context, _ int64) error {
			<-ctx.Done()
			return ctx.Err()
		})
		assert.True(t, errors.Is(h("1"), context.DeadlineExceeded))
	})
}
