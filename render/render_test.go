package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ronney221/Bankroll-Buddy/ledger"
)

var plain = Options{Currency: "$", Color: false}

func TestMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        float64
		expected string
	}{
		{name: "positive", v: 150, expected: "$150.00"},
		{name: "negative", v: -20, expected: "-$20.00"},
		{name: "zero", v: 0, expected: "$0.00"},
		{name: "cents", v: 12.345, expected: "$12.35"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Money("$", tt.v))
		})
	}
}

func TestSignedMoney(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+$50.00", SignedMoney("$", 50))
	assert.Equal(t, "-$20.00", SignedMoney("$", -20))
	assert.Equal(t, "$0.00", SignedMoney("$", 0))
	assert.Equal(t, "+€5.00", SignedMoney("€", 5))
}

func TestSessionsTable(t *testing.T) {
	t.Parallel()

	recs := []ledger.SessionRecord{
		{ID: "01ARZ3NDEKTSV4RRFFQ6", GameName: "Friday Game", BuyIn: 100, CashOut: 150, Stakes: "1/2", GainLoss: 50},
		{ID: "01BX5ZZKBKACTAV9WEVG", GameName: "Saturday Game", BuyIn: 200, CashOut: 180, Stakes: "2/5", GainLoss: -20},
	}

	out := SessionsTable(recs, plain)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3) // header + 2 rows

	assert.Contains(t, lines[0], "GAIN/LOSS")
	assert.Contains(t, lines[1], "Friday Game")
	assert.Contains(t, lines[1], "+$50.00")
	assert.Contains(t, lines[2], "Saturday Game")
	assert.Contains(t, lines[2], "-$20.00")

	// Ids are truncated to a short prefix.
	assert.Contains(t, lines[1], "01ARZ3ND")
	assert.NotContains(t, lines[1], "01ARZ3NDEKTSV4RRFFQ6")
}

func TestSessionsTableEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "No sessions recorded.\n", SessionsTable(nil, plain))
}

func TestTotals(t *testing.T) {
	t.Parallel()

	out := Totals(2, 300, 330, 30, plain)
	assert.Contains(t, out, "Sessions: 2")
	assert.Contains(t, out, "Buy-in: $300.00")
	assert.Contains(t, out, "Cash-out: $330.00")
	assert.Contains(t, out, "Net: +$30.00")
}

func TestSession(t *testing.T) {
	t.Parallel()

	r := ledger.SessionRecord{ID: "S1", GameName: "Friday Game", BuyIn: 100, CashOut: 90, Stakes: "1/2", GainLoss: -10}
	out := Session(r, plain)
	assert.Contains(t, out, "S1")
	assert.Contains(t, out, "Friday Game (1/2)")
	assert.Contains(t, out, "net -$10.00")
}
