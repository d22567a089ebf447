package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ronney221/Bankroll-Buddy/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sessions with running totals",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	l, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	opts := displayOptions(cfg)
	fmt.Print(render.SessionsTable(l.List(), opts))
	if l.Count() > 0 {
		fmt.Println()
		fmt.Print(render.Totals(l.Count(), l.TotalBuyIn(), l.TotalCashOut(), l.TotalGainLoss(), opts))
	}
	return nil
}
