package colorutil

import (
	"errors"
	"math"
	"testing"
)

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		hex  string
		want float64
	}{
		{"#000000", 0},
		{"#ffffff", 1},
		{"#ff0000", 0.2126},
		{"#00ff00", 0.7152},
		{"#0000ff", 0.0722},
	}
	for _, tt := range tests {
		got, err := RelativeLuminance(tt.hex)
		if err != nil {
			t.Fatalf("RelativeLuminance(%q) error = %v", tt.hex, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RelativeLuminance(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		check func(float64) bool
	}{
		{"black on white", "#000000", "#ffffff", func(r float64) bool { return math.Abs(r-21) < 1e-9 }},
		{"high contrast", "#000000", "#ffffff", func(r float64) bool { return r > ContrastAAA }},
		{"low contrast", "#ff0000", "#ff6666", func(r float64) bool { return r < 2 }},
		{"just below AA", "#777777", "#ffffff", func(r float64) bool { return r < ContrastAA && r > ContrastAALarge }},
		{"identical", "#3498db", "#3498db", func(r float64) bool { return r == 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContrastRatio(tt.a, tt.b)
			if err != nil {
				t.Fatalf("ContrastRatio() error = %v", err)
			}
			if !tt.check(got) {
				t.Errorf("ContrastRatio(%s, %s) = %v", tt.a, tt.b, got)
			}
			back, _ := ContrastRatio(tt.b, tt.a)
			if back != got {
				t.Errorf("ContrastRatio not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestContrastRatio_InvalidColor(t *testing.T) {
	if _, err := ContrastRatio("#000", "nope"); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("ContrastRatio error = %v, want ErrInvalidColorFormat", err)
	}
}
