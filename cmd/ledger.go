package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/faceattend/internal/config"
	"github.com/example/faceattend/internal/store"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Print a day's attendance records",
	Long: `Ledger prints the attendance records for one calendar date.

Examples:
  # Today's attendance
  faceattend ledger

  # A specific day
  faceattend ledger --date 2024-01-01`,
	RunE: runLedger,
}

func init() {
	rootCmd.AddCommand(ledgerCmd)

	ledgerCmd.Flags().String("date", "", "Date to print (YYYY-MM-DD, default today)")
}

func runLedger(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	date := time.Now()
	if arg := mustGetString(cmd, "date"); arg != "" {
		var err error
		date, err = time.Parse("2006-01-02", arg)
		if err != nil {
			return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", arg, err)
		}
	}

	path := store.LedgerPath(cfg.Paths.AttendanceDir, date)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("No attendance recorded for %s\n", date.Format("2006-01-02"))
		return nil
	}

	records, err := store.ReadLedger(path)
	if err != nil {
		return err
	}

	fmt.Printf("%-8s %-20s %-12s %s\n", "Id", "Name", "Date", "Time")
	for _, rec := range records {
		fmt.Printf("%-8d %-20s %-12s %s\n", rec.ID, rec.Name, rec.Date, rec.Time)
	}
	fmt.Printf("\n%d records in %s\n", len(records), path)
	return nil
}
