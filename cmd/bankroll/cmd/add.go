package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Ronney221/Bankroll-Buddy/render"
)

var addCmd = &cobra.Command{
	Use:   "add <game> <buy-in> <cash-out>",
	Short: "Record a new poker session",
	Long: `Record a poker session with its buy-in and cash-out amounts.
Gain/loss is computed automatically.

Examples:
  bankroll add "Friday Game" 100 150
  bankroll add "Bellagio 2/5" 500 380 --stakes 2/5`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

var addStakes string

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addStakes, "stakes", "s", "", "table stakes, e.g. 1/2 (default from config)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	buyIn, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("buy-in %q is not a number", args[1])
	}
	cashOut, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("cash-out %q is not a number", args[2])
	}

	l, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	stakes := addStakes
	if stakes == "" {
		stakes = cfg.Defaults.Stakes
	}

	sessionID := l.Add(args[0], buyIn, cashOut, stakes)

	if err := st.Save(l.List()); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}

	rec, err := l.Get(sessionID)
	if err != nil {
		return err
	}
	fmt.Print(render.Session(rec, displayOptions(cfg)))
	return nil
}
