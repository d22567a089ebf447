package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Ronney221/Bankroll-Buddy/ledger"
)

// SQLiteStore persists sessions in a single-table SQLite database.
// Insertion order rides on rowid.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// Save replaces the sessions table contents inside one transaction, so a
// failed save never leaves a half-written ledger behind.
func (s *SQLiteStore) Save(recs []ledger.SessionRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sessions`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO sessions
		(id, game_name, buy_in, cash_out, stakes, gain_loss)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range recs {
		if _, err := stmt.Exec(r.ID, r.GameName, r.BuyIn, r.CashOut, r.Stakes, r.GainLoss); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Load() ([]ledger.SessionRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, game_name, buy_in, cash_out, stakes, gain_loss
		FROM sessions
		ORDER BY rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ledger.SessionRecord
	for rows.Next() {
		var rec ledger.SessionRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.GameName,
			&rec.BuyIn,
			&rec.CashOut,
			&rec.Stakes,
			&rec.GainLoss,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
