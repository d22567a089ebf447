package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all sessions",
	Long: `Empty the ledger entirely. Asks for confirmation unless --yes is
given.

Example:
  bankroll clear --yes`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

var clearYes bool

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	l, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	if l.Count() == 0 {
		fmt.Println("Ledger is already empty")
		return nil
	}

	if !clearYes {
		fmt.Printf("Delete all %d sessions? [y/N] ", l.Count())
		line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("Aborted")
			return nil
		}
	}

	count := l.Count()
	l.Clear()

	if err := st.Save(l.List()); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}

	fmt.Printf("Deleted %d sessions\n", count)
	return nil
}
