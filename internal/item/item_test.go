package item

import "testing"

func TestVolume(t *testing.T) {
	apple := Item{Name: "Apple", Length: 4.0, Width: 2.5, Height: 1.5}
	if got := apple.Volume(); got != 15.0 {
		t.Errorf("Volume() = %v, want 15.0", got)
	}
}

func TestVolume_NoValidation(t *testing.T) {
	// Volume is a pure product; nonsensical inputs pass through untouched.
	tests := []struct {
		name string
		it   Item
		want float64
	}{
		{"zero dimension", Item{Length: 0, Width: 3, Height: 2}, 0},
		{"negative dimension", Item{Length: -2, Width: 3, Height: 2}, -12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.it.Volume(); got != tt.want {
				t.Errorf("Volume() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Apple", "apple"},
		{"  Apple  ", "apple"},
		{"DRAGON FRUIT", "dragon fruit"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
