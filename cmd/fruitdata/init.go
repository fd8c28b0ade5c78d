package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmallory/fruitdata/internal/catalogue"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new catalogue file seeded with the default fruits",
	Long: `Create the catalogue file at the resolved path, seeded with the
four default fruits. Refuses to overwrite an existing file.

Example:
  fruitdata -f /tmp/fruits.json init`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := cataloguePath()

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("catalogue file already exists: %s", path)
	}

	items := catalogue.Default()
	if err := catalogue.Save(path, items); err != nil {
		exitWithError(ExitError, "saving catalogue: %v", err)
	}

	if jsonOutput {
		return outputJSON(StatusResponse{Status: "created", Path: path})
	}
	fmt.Printf("Initialised catalogue at %s with %d fruits.\n", path, len(items))
	return nil
}
