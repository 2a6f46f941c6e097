package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tidy/internal/playlists"
	"github.com/llehouerou/tidy/internal/ui/confirm"
)

const statusTTL = 4 * time.Second

func loadPlaylistsCmd(store *playlists.Store, seq int) tea.Cmd {
	return func() tea.Msg {
		list, err := store.List(context.Background())
		return playlistsLoadedMsg{seq: seq, list: list, err: err}
	}
}

func expireStatusCmd(ttl time.Duration, seq int) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// storeHandler adapts a store operation to a confirm.Handler, bounding it
// with timeout when positive.
func storeHandler(timeout time.Duration, op func(ctx context.Context, id int64) error) confirm.Handler {
	return func(id string) error {
		pid, err := playlists.ParseID(id)
		if err != nil {
			return err
		}
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return op(ctx, pid)
	}
}
