// Package playlists stores playlists and their tracks in SQLite.
package playlists

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	dbutil "github.com/llehouerou/tidy/internal/db"
)

// ErrNotFound is returned when a playlist id does not exist.
var ErrNotFound = errors.New("playlist not found")

// Playlist represents a playlist metadata (without tracks).
type Playlist struct {
	ID         int64
	Name       string
	CreatedAt  time.Time
	LastUsedAt *time.Time
}

// Summary is a playlist with its track count, as listed in the UI.
type Summary struct {
	Playlist
	TrackCount int
}

// Store provides database operations for playlists.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new Store.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Create creates a new playlist.
func (s *Store) Create(name string) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO playlists (name, created_at)
		VALUES (?, ?)
	`, name, s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("create playlist %q: %w", name, err)
	}
	return result.LastInsertId()
}

// List returns every playlist with its track count, by name.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.created_at, p.last_used_at, COUNT(pt.id)
		FROM playlists p
		LEFT JOIN playlist_tracks pt ON pt.playlist_id = p.id
		GROUP BY p.id
		ORDER BY p.name COLLATE NOCASE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var created int64
		var lastUsed sql.NullInt64
		if err := rows.Scan(&sum.ID, &sum.Name, &created, &lastUsed, &sum.TrackCount); err != nil {
			return nil, err
		}
		sum.CreatedAt = time.Unix(created, 0)
		sum.LastUsedAt = dbutil.NullUnixTime(lastUsed)
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Get returns a playlist by its ID.
func (s *Store) Get(id int64) (*Playlist, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, last_used_at
		FROM playlists
		WHERE id = ?
	`, id)

	var pl Playlist
	var created int64
	var lastUsed sql.NullInt64
	if err := row.Scan(&pl.ID, &pl.Name, &created, &lastUsed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, err
	}
	pl.CreatedAt = time.Unix(created, 0)
	pl.LastUsedAt = dbutil.NullUnixTime(lastUsed)
	return &pl, nil
}

// MarkUsed sets last_used_at to now.
func (s *Store) MarkUsed(id int64) error {
	now := s.now()
	_, err := s.db.Exec(`UPDATE playlists SET last_used_at = ? WHERE id = ?`, dbutil.UnixOrNull(&now), id)
	return err
}

// Delete deletes a playlist and all its tracks in one transaction.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM playlist_tracks WHERE playlist_id = ?`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM playlists WHERE id = ?`, id)
		if err != nil {
			return err
		}
		return requireRow(res, id)
	})
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(id)
	}
	return nil
}

func notFound(id int64) error {
	return fmt.Errorf("%w: %d", ErrNotFound, id)
}

// FormatID renders a playlist id for the dialog boundary.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseID is the inverse of FormatID.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid playlist id %q: %w", s, err)
	}
	return id, nil
}
