package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kmallory/fruitdata/internal/catalogue"
	"github.com/kmallory/fruitdata/internal/history"
	"github.com/kmallory/fruitdata/internal/item"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name> <length> <width> <height>",
	Short: "Add a new fruit to the catalogue",
	Long: `Add a fruit with the given name and dimensions and persist the
catalogue. The name must be non-empty after trimming, the dimensions
must be positive, and the name must not already exist
(case-insensitively). A rejected add prints a message and changes
nothing; the command still exits successfully.

Example:
  fruitdata add "Dragon Fruit" 9.0 7.5 7.5`,
	Args: cobra.ExactArgs(4),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	dims := make([]float64, 3)
	for i, field := range []string{"length", "width", "height"} {
		v, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: must be a number", field, args[i+1])
		}
		dims[i] = v
	}

	path := cataloguePath()
	items := loadCatalogue(path)

	updated, err := catalogue.Add(items, item.Item{
		Name:   args[0],
		Length: dims[0],
		Width:  dims[1],
		Height: dims[2],
	})
	if err != nil {
		printRejection(err)
		return nil
	}

	if err := catalogue.Save(path, updated); err != nil {
		exitWithError(ExitError, "saving catalogue: %v", err)
	}

	added := updated[len(updated)-1]
	recordEvent(path, func(db *history.DB) error {
		return db.RecordAdd(added)
	})

	if jsonOutput {
		return outputJSON(StatusResponse{Status: "added", Name: added.Name, Path: path})
	}
	fmt.Printf("Added '%s'.\n", added.Name)
	return nil
}
