package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmallory/fruitdata/internal/item"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all fruits in the catalogue",
	Long: `List the names of all fruits in catalogue order.

Examples:
  fruitdata list
  fruitdata -f /tmp/fruits.json list`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	items := loadCatalogue(cataloguePath())

	if jsonOutput {
		if items == nil {
			items = []item.Item{}
		}
		return outputJSON(items)
	}

	fmt.Println("--- Available Fruits ---")
	for _, it := range items {
		fmt.Println(it.Name)
	}
	return nil
}
