// Seed fills the configured database with demo playlists.
package main

import (
	"fmt"
	"log"

	"github.com/llehouerou/tidy/internal/config"
	"github.com/llehouerou/tidy/internal/playlists"
	"github.com/llehouerou/tidy/internal/state"
)

type demoPlaylist struct {
	name   string
	artist string
	tracks int
	used   bool // marked as recently used
}

var demo = []demoPlaylist{
	{"Road trip", "Various Artists", 14, true},
	{"Chill evening", "Bonobo", 9, true},
	{"Workout", "The Prodigy", 12, false},
	{"Rainy day", "Portishead", 11, false},
	{"Old favourites", "Pink Floyd", 7, true},
	{"Empty", "", 0, false},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stateMgr, err := state.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer stateMgr.Close()
	log.Printf("Seeding %s", stateMgr.Path())

	return seed(playlists.New(stateMgr.DB()), demo)
}

func seed(store *playlists.Store, list []demoPlaylist) error {
	for _, d := range list {
		id, err := store.Create(d.name)
		if err != nil {
			// Most likely the playlist already exists from an earlier run.
			log.Printf("Skipping %q: %v", d.name, err)
			continue
		}

		paths := make([]string, d.tracks)
		for i := range paths {
			paths[i] = fmt.Sprintf("/music/%s/%02d - Track %d.flac", d.artist, i+1, i+1)
		}
		if err := store.AddTracks(id, paths...); err != nil {
			return fmt.Errorf("add tracks to %q: %w", d.name, err)
		}
		if d.used {
			if err := store.MarkUsed(id); err != nil {
				return fmt.Errorf("mark %q used: %w", d.name, err)
			}
		}
		log.Printf("Created %q with %d tracks", d.name, d.tracks)
	}
	return nil
}
