// Package catalogue handles catalogue persistence and in-memory mutations.
package catalogue

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/kmallory/fruitdata/internal/item"
)

// ErrNotFound reports that the catalogue file does not exist at the
// given path. Any other read failure is passed through as an I/O error.
var ErrNotFound = errors.New("catalogue file not found")

// ParseError reports catalogue file content that is not a valid JSON
// array of items (malformed JSON or mis-typed fields).
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing catalogue file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the entire catalogue file and parses it as a JSON array of
// items. Order is preserved as written. Both compact and indented JSON
// parse; missing fields load as zero values, since files edited outside
// the tool are not re-validated here.
func Load(path string) ([]item.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading catalogue file: %w", err)
	}

	var items []item.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return items, nil
}

// Save writes the full catalogue to path as indented JSON, creating the
// file if absent and truncating it otherwise.
func Save(path string, items []item.Item) error {
	if items == nil {
		items = []item.Item{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalogue: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing catalogue file: %w", err)
	}

	return nil
}
