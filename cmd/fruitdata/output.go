package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/kmallory/fruitdata/internal/catalogue"
	"github.com/kmallory/fruitdata/internal/config"
	"github.com/kmallory/fruitdata/internal/history"
	"github.com/kmallory/fruitdata/internal/item"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (text or JSON)
// and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if jsonOutput {
		outputJSON(ErrorResponse{Error: msg})
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse reports the outcome of a mutating command.
type StatusResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name,omitempty"`
	Path    string `json:"path,omitempty"`
	Removed int    `json:"removed,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// FruitDetail is the JSON shape for a single fruit, volume included.
type FruitDetail struct {
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Volume float64 `json:"volume"`
}

func fruitDetail(it item.Item) FruitDetail {
	return FruitDetail{
		Name:   it.Name,
		Length: it.Length,
		Width:  it.Width,
		Height: it.Height,
		Volume: it.Volume(),
	}
}

// printFruitDetail prints a fruit in human-readable form.
func printFruitDetail(it item.Item) {
	fmt.Printf("Name: %s\n", it.Name)
	fmt.Printf("Dimensions: %g x %g x %g\n", it.Length, it.Width, it.Height)
	fmt.Printf("Volume: %g\n", it.Volume())
}

// rejectionMessage maps a validation rejection to its user-facing text.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, catalogue.ErrEmptyName):
		return "Name must not be empty."
	case errors.Is(err, catalogue.ErrNonPositiveDims):
		return "Dimensions must be positive numbers."
	}
	var dup *catalogue.DuplicateError
	if errors.As(err, &dup) {
		return fmt.Sprintf("Fruit '%s' already exists.", dup.Name)
	}
	return err.Error()
}

// printRejection reports a validation rejection. Rejections are terminal
// no-ops for the invocation, not failures: the command still exits 0.
func printRejection(err error) {
	if jsonOutput {
		outputJSON(StatusResponse{Status: "rejected", Reason: rejectionMessage(err)})
		return
	}
	fmt.Println(rejectionMessage(err))
}

// recordEvent journals a mutation in the history sidecar. The journal is
// best-effort: failures warn on stderr and never fail the command.
func recordEvent(cataloguePath string, record func(*history.DB) error) {
	db, err := history.Open(config.HistoryPath(cataloguePath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return
	}
	defer db.Close()

	if err := record(db); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}
