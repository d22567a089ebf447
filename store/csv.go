package store

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/Ronney221/Bankroll-Buddy/ledger"
)

// WriteCSV writes sessions as CSV with a header row, for spreadsheet export.
// It is an export format only, never a load source.
func WriteCSV(w io.Writer, recs []ledger.SessionRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "game_name", "buy_in", "cash_out", "stakes", "gain_loss"}); err != nil {
		return err
	}

	for _, r := range recs {
		if err := cw.Write([]string{
			r.ID,
			r.GameName,
			f(r.BuyIn),
			f(r.CashOut),
			r.Stakes,
			f(r.GainLoss),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
