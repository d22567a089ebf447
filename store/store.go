// Package store persists session records. Backends share a small interface
// so the CLI does not care whether sessions live in a JSON document or a
// SQLite database.
package store

import (
	"fmt"

	"github.com/Ronney221/Bankroll-Buddy/config"
	"github.com/Ronney221/Bankroll-Buddy/ledger"
)

type Store interface {
	// Save replaces the persisted session set with recs, in order.
	Save(recs []ledger.SessionRecord) error
	// Load returns all persisted sessions in insertion order. Missing or
	// unreadable saved data yields an empty slice, not an error.
	Load() ([]ledger.SessionRecord, error)
	Close() error
}

// Open builds the store selected by cfg.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Store.Type {
	case config.StoreJSON:
		return NewJSONFile(cfg.Store.Path), nil
	case config.StoreSQLite:
		return NewSQLite(cfg.Store.Path)
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Store.Type)
	}
}
