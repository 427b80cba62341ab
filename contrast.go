package colorutil

import "math"

// WCAG 2 minimum contrast ratios.
const (
	// ContrastAALarge is the AA minimum for large text and UI components.
	ContrastAALarge = 3.0
	// ContrastAA is the AA minimum for normal text.
	ContrastAA = 4.5
	// ContrastAAA is the AAA minimum for normal text.
	ContrastAAA = 7.0
)

// Rec. 709 luminance coefficients used by WCAG.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// RelativeLuminance returns the WCAG 2 relative luminance of hex in [0, 1].
func RelativeLuminance(hex string) (float64, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return 0, err
	}
	r, g, b := c.LinearRgb()
	return lumR*r + lumG*g + lumB*b, nil
}

// ContrastRatio returns the WCAG 2 contrast ratio between a and b, in
// [1, 21]. The result does not depend on argument order.
func ContrastRatio(a, b string) (float64, error) {
	la, err := RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := RelativeLuminance(b)
	if err != nil {
		return 0, err
	}
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05), nil
}
