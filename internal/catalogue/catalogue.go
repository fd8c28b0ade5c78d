package catalogue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kmallory/fruitdata/internal/item"
)

// Validation rejections. These are user-input problems, not failures:
// commands print them and still exit successfully.
var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrNonPositiveDims = errors.New("dimensions must be positive numbers")
)

// DuplicateError reports an add that collides with an existing item.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("fruit '%s' already exists", e.Name)
}

// Default returns the seed catalogue used whenever loading fails.
func Default() []item.Item {
	return []item.Item{
		{Name: "Orange", Length: 5.0, Width: 3.0, Height: 2.0},
		{Name: "Apple", Length: 4.0, Width: 2.5, Height: 1.5},
		{Name: "Banana", Length: 6.0, Width: 3.5, Height: 2.5},
		{Name: "Pear", Length: 6.0, Width: 3.5, Height: 2.5},
	}
}

// Find returns the first item whose name matches case-insensitively.
func Find(items []item.Item, name string) (item.Item, bool) {
	key := item.Normalize(name)
	for _, it := range items {
		if item.Normalize(it.Name) == key {
			return it, true
		}
	}
	return item.Item{}, false
}

// Add validates and appends a new item. Checks run in a fixed order:
// empty name, then dimension positivity, then duplicate name. The
// stored name is the trimmed form of it.Name. On rejection the input
// slice is returned unchanged.
func Add(items []item.Item, it item.Item) ([]item.Item, error) {
	key := item.Normalize(it.Name)
	if key == "" {
		return items, ErrEmptyName
	}

	if it.Length <= 0 || it.Width <= 0 || it.Height <= 0 {
		return items, ErrNonPositiveDims
	}

	trimmed := strings.TrimSpace(it.Name)
	if _, found := Find(items, trimmed); found {
		return items, &DuplicateError{Name: trimmed}
	}

	it.Name = trimmed
	return append(items, it), nil
}

// Remove deletes every item matching name case-insensitively and
// returns the number removed. A zero count means the name was not
// present; callers skip persisting in that case.
func Remove(items []item.Item, name string) ([]item.Item, int, error) {
	key := item.Normalize(name)
	if key == "" {
		return items, 0, ErrEmptyName
	}

	kept := items[:0:0]
	for _, it := range items {
		if item.Normalize(it.Name) != key {
			kept = append(kept, it)
		}
	}

	return kept, len(items) - len(kept), nil
}
