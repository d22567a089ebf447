package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ronney221/Bankroll-Buddy/render"
)

var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Show aggregate buy-in, cash-out and net gain/loss",
	Args:  cobra.NoArgs,
	RunE:  runTotals,
}

func init() {
	rootCmd.AddCommand(totalsCmd)
}

func runTotals(cmd *cobra.Command, args []string) error {
	l, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Print(render.Totals(l.Count(), l.TotalBuyIn(), l.TotalCashOut(), l.TotalGainLoss(), displayOptions(cfg)))
	return nil
}
