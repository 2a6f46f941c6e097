// Package app is the root Bubble Tea model: a playlist list whose
// destructive actions go through confirm dialogs.
package app

import (
	"github.com/llehouerou/tidy/internal/playlists"
)

// playlistsLoadedMsg carries the result of a list reload.
type playlistsLoadedMsg struct {
	seq  int
	list []playlists.Summary
	err  error
}

// statusExpiredMsg clears the status line if it has not changed since.
type statusExpiredMsg struct {
	seq int
}
