// Package config handles catalogue path resolution and global configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultCatalogueFile is used when nothing else names a path.
	DefaultCatalogueFile = "fruits.json"

	// EnvCatalogueFile is the environment override for the catalogue path.
	EnvCatalogueFile = "FRUITDATA_FILE"

	// HistoryDBSuffix is appended to the catalogue base name for the
	// mutation journal sidecar.
	HistoryDBSuffix = ".history.db"
)

// ResolveCataloguePath picks the catalogue file path for one invocation.
// Precedence: explicit --file flag, then FRUITDATA_FILE, then the global
// config, then the default. The caller is responsible for loading .env
// before this runs so the env lookup sees it.
func ResolveCataloguePath(flagValue string, flagSet bool) string {
	if flagSet && flagValue != "" {
		return flagValue
	}

	if path := os.Getenv(EnvCatalogueFile); path != "" {
		return path
	}

	if cfg, err := LoadGlobalConfig(); err == nil && cfg.CatalogueFile != "" {
		return ExpandTilde(cfg.CatalogueFile)
	}

	return DefaultCatalogueFile
}

// HistoryPath returns the mutation journal path for a catalogue file:
// the catalogue path with its extension replaced by ".history.db", so
// "fruits.json" journals to "fruits.history.db" alongside it.
func HistoryPath(cataloguePath string) string {
	ext := filepath.Ext(cataloguePath)
	return strings.TrimSuffix(cataloguePath, ext) + HistoryDBSuffix
}

// ExpandTilde expands a leading ~/ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
