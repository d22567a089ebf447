// Package render formats sessions and totals for terminal output.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Ronney221/Bankroll-Buddy/ledger"
)

// Options come from the display section of the config.
type Options struct {
	Currency string
	Color    bool
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	gainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	lossStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	totalStyle  = lipgloss.NewStyle().Bold(true)
)

// Money formats an amount with the currency symbol, sign before the symbol:
// Money("$", -20) -> "-$20.00".
func Money(currency string, v float64) string {
	if v < 0 {
		return "-" + currency + strconv.FormatFloat(-v, 'f', 2, 64)
	}
	return currency + strconv.FormatFloat(v, 'f', 2, 64)
}

// SignedMoney is Money with an explicit "+" on gains, for gain/loss columns.
func SignedMoney(currency string, v float64) string {
	if v > 0 {
		return "+" + Money(currency, v)
	}
	return Money(currency, v)
}

// SessionsTable renders all sessions as an aligned table, insertion order.
func SessionsTable(recs []ledger.SessionRecord, opts Options) string {
	if len(recs) == 0 {
		return "No sessions recorded.\n"
	}

	gameW := len("GAME")
	stakesW := len("STAKES")
	for _, r := range recs {
		if len(r.GameName) > gameW {
			gameW = len(r.GameName)
		}
		if len(r.Stakes) > stakesW {
			stakesW = len(r.Stakes)
		}
	}

	var b strings.Builder

	head := fmt.Sprintf("%-10s  %-*s  %-*s  %12s  %12s  %12s",
		"ID", gameW, "GAME", stakesW, "STAKES", "BUY-IN", "CASH-OUT", "GAIN/LOSS")
	b.WriteString(opts.style(headerStyle, head))
	b.WriteString("\n")

	for _, r := range recs {
		// Pad cells before styling so ANSI codes don't skew alignment.
		idCell := fmt.Sprintf("%-10s", shortID(r.ID))
		glCell := fmt.Sprintf("%12s", SignedMoney(opts.Currency, r.GainLoss))

		b.WriteString(fmt.Sprintf("%s  %-*s  %-*s  %12s  %12s  %s\n",
			opts.style(idStyle, idCell),
			gameW, r.GameName,
			stakesW, r.Stakes,
			Money(opts.Currency, r.BuyIn),
			Money(opts.Currency, r.CashOut),
			opts.styleAmount(glCell, r.GainLoss),
		))
	}

	return b.String()
}

// Totals renders the aggregate footer.
func Totals(count int, buyIn, cashOut, gainLoss float64, opts Options) string {
	line := fmt.Sprintf("Sessions: %d   Buy-in: %s   Cash-out: %s   Net: %s",
		count,
		Money(opts.Currency, buyIn),
		Money(opts.Currency, cashOut),
		opts.styleAmount(SignedMoney(opts.Currency, gainLoss), gainLoss),
	)
	return opts.style(totalStyle, line) + "\n"
}

// Session renders a single record, used after add and update.
func Session(r ledger.SessionRecord, opts Options) string {
	return fmt.Sprintf("%s  %s (%s)  buy-in %s, cash-out %s, net %s\n",
		opts.style(idStyle, r.ID),
		r.GameName,
		r.Stakes,
		Money(opts.Currency, r.BuyIn),
		Money(opts.Currency, r.CashOut),
		opts.styleAmount(SignedMoney(opts.Currency, r.GainLoss), r.GainLoss),
	)
}

func (o Options) style(st lipgloss.Style, s string) string {
	if !o.Color {
		return s
	}
	return st.Render(s)
}

func (o Options) styleAmount(s string, v float64) string {
	switch {
	case !o.Color || v == 0:
		return s
	case v > 0:
		return gainStyle.Render(s)
	default:
		return lossStyle.Render(s)
	}
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
