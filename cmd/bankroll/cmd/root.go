package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ronney221/Bankroll-Buddy/config"
	"github.com/Ronney221/Bankroll-Buddy/ledger"
	"github.com/Ronney221/Bankroll-Buddy/render"
	"github.com/Ronney221/Bankroll-Buddy/store"
)

var rootCmd = &cobra.Command{
	Use:   "bankroll",
	Short: "A personal poker session tracker",
	Long: `Bankroll Buddy tracks your poker sessions from the command line.

It provides tools for:
  - Recording buy-in and cash-out per session
  - Listing sessions with computed gain/loss
  - Running totals across your whole bankroll
  - Exporting sessions to CSV for spreadsheets
  - JSON or SQLite persistence

Complete documentation is available at https://github.com/Ronney221/Bankroll-Buddy`,
}

var cfgPath string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default is ~/.bankroll/config.yaml)")
}

// openLedger resolves config, opens the configured store and rehydrates the
// ledger from it. Callers own closing the returned store.
func openLedger() (*ledger.Ledger, store.Store, *config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}

	st, err := store.Open(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	recs, err := st.Load()
	if err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("load sessions: %w", err)
	}

	l := ledger.New()
	if err := l.Restore(recs); err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("restore sessions: %w", err)
	}

	return l, st, cfg, nil
}

func displayOptions(cfg *config.Config) render.Options {
	return render.Options{
		Currency: cfg.Display.Currency,
		Color:    cfg.Display.Color,
	}
}
