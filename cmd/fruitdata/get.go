package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmallory/fruitdata/internal/catalogue"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show a fruit's dimensions and volume",
	Long: `Look up a fruit by name, case-insensitively, and show its
dimensions and derived volume. With duplicate names (possible only
through external file edits) the first match in catalogue order wins.

Example:
  fruitdata get apple`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	items := loadCatalogue(cataloguePath())

	name := args[0]
	it, found := catalogue.Find(items, name)
	if !found {
		if jsonOutput {
			return outputJSON(ErrorResponse{Error: fmt.Sprintf("fruit not found: %s", name)})
		}
		fmt.Printf("Fruit '%s' not found.\n", name)
		return nil
	}

	if jsonOutput {
		return outputJSON(fruitDetail(it))
	}
	printFruitDetail(it)
	return nil
}
