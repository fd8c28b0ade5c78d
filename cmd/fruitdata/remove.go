package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmallory/fruitdata/internal/catalogue"
	"github.com/kmallory/fruitdata/internal/history"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a fruit from the catalogue",
	Long: `Remove every fruit matching the given name case-insensitively
and persist the catalogue. Removing a name that is not present prints a
message and saves nothing.

Example:
  fruitdata remove banana`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	path := cataloguePath()
	items := loadCatalogue(path)

	name := strings.TrimSpace(args[0])
	updated, removed, err := catalogue.Remove(items, name)
	if err != nil {
		printRejection(err)
		return nil
	}

	if removed == 0 {
		if jsonOutput {
			return outputJSON(StatusResponse{Status: "not_found", Name: name})
		}
		fmt.Printf("Fruit '%s' not found.\n", name)
		return nil
	}

	if err := catalogue.Save(path, updated); err != nil {
		exitWithError(ExitError, "saving catalogue: %v", err)
	}

	recordEvent(path, func(db *history.DB) error {
		return db.RecordRemove(name, removed)
	})

	if jsonOutput {
		return outputJSON(StatusResponse{Status: "removed", Name: name, Removed: removed})
	}
	fmt.Printf("Removed '%s'.\n", name)
	return nil
}
