package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmallory/fruitdata/internal/config"
	"github.com/kmallory/fruitdata/internal/history"
)

var historyLimit int

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum events to show (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent catalogue mutations",
	Long: `Show recent add/remove operations recorded in the journal kept
next to the catalogue file, newest first.

Examples:
  fruitdata history
  fruitdata history --limit 5`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath := config.HistoryPath(cataloguePath())

	// Opening would create an empty journal; don't for a read-only command.
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		if jsonOutput {
			return outputJSON([]history.Event{})
		}
		fmt.Println("No history recorded.")
		return nil
	}

	db, err := history.Open(dbPath)
	if err != nil {
		exitWithError(ExitError, "opening history: %v", err)
	}
	defer db.Close()

	events, err := db.Recent(historyLimit)
	if err != nil {
		exitWithError(ExitError, "reading history: %v", err)
	}

	if jsonOutput {
		if events == nil {
			events = []history.Event{}
		}
		return outputJSON(events)
	}

	if len(events) == 0 {
		fmt.Println("No history recorded.")
		return nil
	}
	for _, e := range events {
		when := e.RecordedAt.Local().Format(time.RFC3339)
		switch e.Op {
		case history.OpAdd:
			fmt.Printf("%s  add     %s (%g x %g x %g)\n", when, e.Name, e.Length, e.Width, e.Height)
		case history.OpRemove:
			fmt.Printf("%s  remove  %s (%d removed)\n", when, e.Name, e.Removed)
		default:
			fmt.Printf("%s  %s  %s\n", when, e.Op, e.Name)
		}
	}
	return nil
}
