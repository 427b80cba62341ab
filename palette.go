package colorutil

import "github.com/lucasb-eyer/go-colorful"

// Hue offsets used by the harmony generators, in degrees.
const (
	complementaryOffset = 180.0
	analogousStep       = 30.0
	triadicStep         = 120.0
)

// Lightness bounds for Monochromatic.
const (
	monoLightest = 0.9
	monoDarkest  = 0.1
)

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// Complementary returns the color opposite hex on the HSL hue wheel.
// Achromatic colors have no hue, so their lightness is inverted instead:
// white maps to black and black to white.
func Complementary(hex string) (string, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return "", err
	}
	return toHex(complement(c)), nil
}

func complement(c colorful.Color) colorful.Color {
	h, s, l := c.Hsl()
	if s == 0 {
		return colorful.Hsl(0, 0, 1-l)
	}
	return colorful.Hsl(normalizeHue(h+complementaryOffset), s, l)
}

// ComplementaryPalette returns n colors interpolated in Lab from hex to
// its complement, both ends included.
func ComplementaryPalette(hex string, n int) ([]string, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return nil, err
	}
	return labRamp(c, complement(c), n), nil
}

// Analogous returns n colors next to hex on the hue wheel, alternating
// +30°, -30°, +60°, -60° and so on. The input color is not included.
func Analogous(hex string, n int) ([]string, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []string{}, nil
	}

	h, s, l := c.Hsl()
	out := make([]string, n)
	for i := range n {
		offset := float64(i/2+1) * analogousStep
		if i%2 == 1 {
			offset = -offset
		}
		out[i] = toHex(colorful.Hsl(normalizeHue(h+offset), s, l))
	}
	return out, nil
}

// Triadic returns hex followed by the colors 120° and 240° away on the
// hue wheel.
func Triadic(hex string) ([]string, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return nil, err
	}

	h, s, l := c.Hsl()
	return []string{
		toHex(c),
		toHex(colorful.Hsl(normalizeHue(h+triadicStep), s, l)),
		toHex(colorful.Hsl(normalizeHue(h+2*triadicStep), s, l)),
	}, nil
}

// Monochromatic returns n colors sharing the hue and saturation of hex,
// with lightness falling evenly from 0.9 to 0.1.
// For n == 1 the result is hex itself.
func Monochromatic(hex string, n int) ([]string, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return nil, err
	}
	switch {
	case n <= 0:
		return []string{}, nil
	case n == 1:
		return []string{toHex(c)}, nil
	}

	h, s, _ := c.Hsl()
	out := make([]string, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		l := monoLightest - t*(monoLightest-monoDarkest)
		out[i] = toHex(colorful.Hsl(h, s, l))
	}
	return out, nil
}

// Shades returns n colors from hex to black, interpolated in Lab.
// The first element is hex and the last is "#000000".
func Shades(hex string, n int) ([]string, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return nil, err
	}
	return labRamp(c, black, n), nil
}

// Tints returns n colors from hex to white, interpolated in Lab.
// The first element is hex and the last is "#ffffff".
func Tints(hex string, n int) ([]string, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return nil, err
	}
	return labRamp(c, white, n), nil
}

// labRamp returns n evenly spaced Lab interpolations from a to b.
// The endpoints are exact.
func labRamp(a, b colorful.Color, n int) []string {
	if n <= 0 {
		return []string{}
	}

	out := make([]string, n)
	out[0] = toHex(a)
	if n == 1 {
		return out
	}
	for i := 1; i < n-1; i++ {
		out[i] = toHex(a.BlendLab(b, float64(i)/float64(n-1)))
	}
	out[n-1] = toHex(b)
	return out
}
