package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ronney221/Bankroll-Buddy/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions to CSV",
	Long: `Write all sessions to a CSV file for spreadsheets.

Example:
  bankroll export --out sessions.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "sessions.csv", "output CSV file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	l, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOut, err)
	}
	defer f.Close()

	if err := store.WriteCSV(f, l.List()); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	fmt.Printf("Exported %d sessions to %s\n", l.Count(), exportOut)
	return nil
}
