package playlists

import (
	"context"
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/tidy/internal/db"
)

// Track is one entry of a playlist.
type Track struct {
	Position int
	Path     string
	AddedAt  time.Time
}

// Tracks returns the tracks of a playlist in order.
func (s *Store) Tracks(playlistID int64) ([]Track, error) {
	rows, err := s.db.Query(`
		SELECT position, path, added_at
		FROM playlist_tracks
		WHERE playlist_id = ?
		ORDER BY position
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		var t Track
		var added int64
		if err := rows.Scan(&t.Position, &t.Path, &added); err != nil {
			return nil, err
		}
		t.AddedAt = time.Unix(added, 0)
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// TrackCount returns the number of tracks in a playlist.
func (s *Store) TrackCount(playlistID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM playlist_tracks WHERE playlist_id = ?
	`, playlistID).Scan(&count)
	return count, err
}

// AddTracks appends tracks to a playlist by path.
func (s *Store) AddTracks(playlistID int64, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	now := s.now().Unix()

	return dbutil.WithTx(context.Background(), s.db, func(tx *sql.Tx) error {
		// Get current max position
		var maxPos sql.NullInt64
		err := tx.QueryRow(`
			SELECT MAX(position) FROM playlist_tracks WHERE playlist_id = ?
		`, playlistID).Scan(&maxPos)
		if err != nil {
			return err
		}
		nextPos := 0
		if maxPos.Valid {
			nextPos = int(maxPos.Int64) + 1
		}

		stmt, err := tx.Prepare(`
			INSERT INTO playlist_tracks (playlist_id, position, path, added_at)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, path := range paths {
			if _, err := stmt.Exec(playlistID, nextPos+i, path, now); err != nil {
				return err
			}
		}
		return nil
	})
}

// ClearTracks removes every track from a playlist, keeping the playlist.
func (s *Store) ClearTracks(ctx context.Context, playlistID int64) error {
	return dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM playlists WHERE id = ?`, playlistID).Scan(&exists)
		if err != nil {
			return err
		}
		if exists == 0 {
			return notFound(playlistID)
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM playlist_tracks WHERE playlist_id = ?`, playlistID)
		return err
	})
}
