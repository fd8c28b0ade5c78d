// Package item defines the core domain type for catalogue entries.
package item

import "strings"

// Item represents a single fruit and its measured dimensions.
type Item struct {
	Name   string  `json:"name"`   // Identity key, matched case-insensitively
	Length float64 `json:"length"` // Dimensions in centimeters
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Volume returns the bounding-box volume of the fruit.
// It performs no validation: negative dimensions yield a negative
// volume, which is the caller's problem to prevent at the add boundary.
func (i Item) Volume() float64 {
	return i.Length * i.Width * i.Height
}

// Normalize returns the canonical form of a fruit name for comparison:
// surrounding whitespace trimmed, lower-cased. Every name comparison in
// the tool (get, add duplicate check, remove) goes through this so the
// commands cannot drift apart.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
