package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Remove a session",
	Long: `Remove a session from the ledger. Deleting an id that does not
exist is a no-op.

Example:
  bankroll delete 01J5X0`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	l, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	before := l.Count()
	l.Delete(args[0])

	if err := st.Save(l.List()); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}

	if l.Count() < before {
		fmt.Printf("Deleted session %s\n", args[0])
	} else {
		fmt.Printf("No session %s, nothing to delete\n", args[0])
	}
	return nil
}
