// Package main provides the fruitdata CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kmallory/fruitdata/internal/catalogue"
	"github.com/kmallory/fruitdata/internal/config"
	"github.com/kmallory/fruitdata/internal/item"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// catalogueFile holds the --file flag value
	catalogueFile string
	// jsonOutput controls whether to use JSON output instead of text
	jsonOutput bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitdata",
	Short: "Manage a fruit catalogue stored as a JSON file",
	Long: `fruitdata is a single-user CLI for managing a small catalogue of
fruits, each with a name and three dimensions, persisted as one JSON
document on disk. Every mutation rewrites the whole file.

The catalogue path is resolved from --file, the FRUITDATA_FILE
environment variable (a .env file is honored), the global config at
~/.config/fruitdata/config.yml, or the default fruits.json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogueFile, "file", "f", config.DefaultCatalogueFile, "Path to the catalogue JSON file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Use JSON output instead of human-readable text")
	rootCmd.Version = Version
}

// cataloguePath resolves the catalogue file path for this invocation.
func cataloguePath() string {
	_ = godotenv.Load()
	return config.ResolveCataloguePath(catalogueFile, rootCmd.PersistentFlags().Changed("file"))
}

// loadCatalogue loads the catalogue at path. Any load failure falls
// back to the default catalogue after a warning on stderr that names
// the underlying cause, so a missing file and a corrupt one are at
// least distinguishable in the log.
func loadCatalogue(path string) []item.Item {
	items, err := catalogue.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; starting from the default catalogue\n", err)
		return catalogue.Default()
	}
	return items
}
