// Package ledger holds the in-memory session ledger: an ordered collection
// of poker session records with their aggregate queries.
package ledger

import (
	"fmt"

	"github.com/Ronney221/Bankroll-Buddy/pkg/id"
)

// SessionRecord is one logged poker session. GainLoss is always derived from
// CashOut - BuyIn; callers never set it directly.
type SessionRecord struct {
	ID       string  `json:"id"`
	GameName string  `json:"gameName"`
	BuyIn    float64 `json:"buyIn"`
	CashOut  float64 `json:"cashOut"`
	Stakes   string  `json:"stakes"`
	GainLoss float64 `json:"gainLoss"`
}

// NotFoundError reports an operation against a session id the ledger does
// not contain.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session %q not found", e.ID)
}

// Patch carries the fields of a partial update. Nil fields are left
// untouched.
type Patch struct {
	GameName *string
	BuyIn    *float64
	CashOut  *float64
	Stakes   *string
}

// Ledger is an ordered sequence of session records, insertion order
// preserved, one record per id. The zero value is an empty ledger ready
// for use. It is owned by a single caller; no locking.
type Ledger struct {
	records []SessionRecord
}

func New() *Ledger {
	return &Ledger{}
}

// Add appends a new session and returns its freshly generated id.
func (l *Ledger) Add(gameName string, buyIn, cashOut float64, stakes string) string {
	rec := SessionRecord{
		ID:       id.New(),
		GameName: gameName,
		BuyIn:    buyIn,
		CashOut:  cashOut,
		Stakes:   stakes,
		GainLoss: cashOut - buyIn,
	}
	l.records = append(l.records, rec)
	return rec.ID
}

// Update applies the set fields of p to the record with the given id,
// recomputing GainLoss whenever BuyIn or CashOut changes. Returns a
// NotFoundError if the id is unknown; the ledger is left unchanged.
func (l *Ledger) Update(sessionID string, p Patch) error {
	i := l.find(sessionID)
	if i < 0 {
		return &NotFoundError{ID: sessionID}
	}

	rec := &l.records[i]
	if p.GameName != nil {
		rec.GameName = *p.GameName
	}
	if p.Stakes != nil {
		rec.Stakes = *p.Stakes
	}
	if p.BuyIn != nil {
		rec.BuyIn = *p.BuyIn
	}
	if p.CashOut != nil {
		rec.CashOut = *p.CashOut
	}
	if p.BuyIn != nil || p.CashOut != nil {
		rec.GainLoss = rec.CashOut - rec.BuyIn
	}
	return nil
}

// Delete removes the record with the given id. Deleting an unknown id is a
// no-op, not an error.
func (l *Ledger) Delete(sessionID string) {
	i := l.find(sessionID)
	if i < 0 {
		return
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.records = nil
}

// Get returns the record with the given id, or a NotFoundError.
func (l *Ledger) Get(sessionID string) (SessionRecord, error) {
	i := l.find(sessionID)
	if i < 0 {
		return SessionRecord{}, &NotFoundError{ID: sessionID}
	}
	return l.records[i], nil
}

// List returns an independent snapshot of all records in insertion order.
// Mutating the result does not affect the ledger.
func (l *Ledger) List() []SessionRecord {
	out := make([]SessionRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Restore adopts previously persisted records, keeping their original ids so
// updates and deletes stay meaningful across runs. GainLoss is recomputed so
// the derived-field invariant holds regardless of what was stored. Records
// with empty or duplicate ids are rejected and the ledger is left unchanged.
func (l *Ledger) Restore(recs []SessionRecord) error {
	seen := make(map[string]bool, len(recs))
	for _, r := range recs {
		if r.ID == "" {
			return fmt.Errorf("restore: record %q has no id", r.GameName)
		}
		if seen[r.ID] || l.find(r.ID) >= 0 {
			return fmt.Errorf("restore: duplicate session id %q", r.ID)
		}
		seen[r.ID] = true
	}

	for _, r := range recs {
		r.GainLoss = r.CashOut - r.BuyIn
		l.records = append(l.records, r)
	}
	return nil
}

// Count returns the number of records.
func (l *Ledger) Count() int {
	return len(l.records)
}

// TotalBuyIn sums buy-ins over all records; 0 for an empty ledger.
func (l *Ledger) TotalBuyIn() float64 {
	var sum float64
	for _, r := range l.records {
		sum += r.BuyIn
	}
	return sum
}

// TotalCashOut sums cash-outs over all records; 0 for an empty ledger.
func (l *Ledger) TotalCashOut() float64 {
	var sum float64
	for _, r := range l.records {
		sum += r.CashOut
	}
	return sum
}

// TotalGainLoss sums gain/loss over all records; 0 for an empty ledger.
// Always equals TotalCashOut() - TotalBuyIn().
func (l *Ledger) TotalGainLoss() float64 {
	var sum float64
	for _, r := range l.records {
		sum += r.GainLoss
	}
	return sum
}

func (l *Ledger) find(sessionID string) int {
	for i, r := range l.records {
		if r.ID == sessionID {
			return i
		}
	}
	return -1
}
