package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ronney221/Bankroll-Buddy/ledger"
	"github.com/Ronney221/Bankroll-Buddy/render"
)

var updateCmd = &cobra.Command{
	Use:   "update <session-id>",
	Short: "Edit fields of an existing session",
	Long: `Update one or more fields of a recorded session. Only the flags you
pass are changed; gain/loss is recomputed when buy-in or cash-out moves.

Examples:
  bankroll update 01J5X0 --cash-out 220
  bankroll update 01J5X0 --game "Home Game" --stakes 1/3`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var (
	updateGame    string
	updateBuyIn   float64
	updateCashOut float64
	updateStakes  string
)

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateGame, "game", "", "new game name")
	updateCmd.Flags().Float64Var(&updateBuyIn, "buy-in", 0, "new buy-in amount")
	updateCmd.Flags().Float64Var(&updateCashOut, "cash-out", 0, "new cash-out amount")
	updateCmd.Flags().StringVar(&updateStakes, "stakes", "", "new stakes")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	var patch ledger.Patch
	if cmd.Flags().Changed("game") {
		patch.GameName = &updateGame
	}
	if cmd.Flags().Changed("buy-in") {
		patch.BuyIn = &updateBuyIn
	}
	if cmd.Flags().Changed("cash-out") {
		patch.CashOut = &updateCashOut
	}
	if cmd.Flags().Changed("stakes") {
		patch.Stakes = &updateStakes
	}
	if patch == (ledger.Patch{}) {
		return fmt.Errorf("nothing to update: pass at least one of --game, --buy-in, --cash-out, --stakes")
	}

	l, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	sessionID := args[0]
	if err := l.Update(sessionID, patch); err != nil {
		return err
	}

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
