package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Ronney221/Bankroll-Buddy/ledger"
)

// StorageKey is the fixed key the session array is stored under inside the
// JSON document. The on-disk shape is the external contract:
//
//	{"bankroll.sessions": [{id, gameName, buyIn, cashOut, stakes, gainLoss}, ...]}
const StorageKey = "bankroll.sessions"

// JSONFileStore keeps the whole ledger as one serialized blob under a fixed
// key in a single JSON file.
type JSONFileStore struct {
	path string
}

func NewJSONFile(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

func (s *JSONFileStore) Save(recs []ledger.SessionRecord) error {
	if recs == nil {
		recs = []ledger.SessionRecord{}
	}

	doc := map[string][]ledger.SessionRecord{StorageKey: recs}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write sessions: %w", err)
	}
	return nil
}

// Load reads the saved sessions. A missing file means no saved data.
// Malformed data is reported and also treated as no saved data, so the
// ledger starts empty rather than partially populated.
func (s *JSONFileStore) Load() ([]ledger.SessionRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read sessions: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("discarding malformed session data", "path", s.path, "err", err)
		return nil, nil
	}

	raw, ok := doc[StorageKey]
	if !ok {
		return nil, nil
	}

	var recs []ledger.SessionRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		slog.Warn("discarding malformed session data", "path", s.path, "err", err)
		return nil, nil
	}
	return recs, nil
}

func (s *JSONFileStore) Close() error {
	return nil
}
