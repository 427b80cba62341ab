package colorutil

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// RGB is an opaque color with 8-bit red, green and blue components.
type RGB struct {
	R, G, B uint8
}

// HSL is a color in the HSL model.
// H is hue in [0, 360), S is saturation in [0, 1], L is lightness in [0, 1].
type HSL struct {
	H, S, L float64
}

// Lab is a color in CIE L*a*b* (D65 white point).
// L is lightness in [0, 100]; A and B are signed chroma axes, roughly
// [-128, 127] for colors inside the sRGB gamut.
type Lab struct {
	L, A, B float64
}

// labScale converts between go-colorful's unit Lab and conventional Lab.
const labScale = 100.0

// ParseColor parses a color token.
// Accepted forms are "RGB" and "RRGGBB" hex, in any case and with an
// optional leading '#', and SVG 1.1 color names such as "darkslateblue".
// Surrounding whitespace is ignored for both forms.
// Any other input returns an *InvalidColorError.
func ParseColor(s string) (colorful.Color, error) {
	token := strings.TrimSpace(s)
	if c, ok := parseHexColor(token); ok {
		return c, nil
	}
	if named, ok := colornames.Map[foldName(token)]; ok {
		return colorful.Color{
			R: float64(named.R) / 255,
			G: float64(named.G) / 255,
			B: float64(named.B) / 255,
		}, nil
	}
	return colorful.Color{}, &InvalidColorError{Input: s}
}

// foldName folds a color name for lookup in colornames.Map.
// A Caser is stateful, so one is created per call.
func foldName(s string) string {
	return cases.Fold().String(s)
}

// parseHexColor parses "RGB" or "RRGGBB" with an optional '#'.
func parseHexColor(hex string) (colorful.Color, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return colorful.Color{}, false
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return colorful.Color{}, false
		}
	default:
		return colorful.Color{}, false
	}

	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}, true
}

// parseHex accumulates hex digits into val and reports whether
// every byte was a hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// toHex formats c as lowercase "#rrggbb", clamping out-of-gamut values.
func toHex(c colorful.Color) string {
	return c.Clamped().Hex()
}

// Normalize returns the canonical lowercase "#rrggbb" form of a color token.
func Normalize(color string) (string, error) {
	c, err := ParseColor(color)
	if err != nil {
		return "", err
	}
	return toHex(c), nil
}

// HexToRGB converts a color token to 8-bit RGB.
func HexToRGB(hex string) (RGB, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return RGB{}, err
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// RGBToHex formats rgb as "#rrggbb".
func RGBToHex(rgb RGB) string {
	return toHex(rgb.toColorful())
}

// RGBToHSL converts rgb to HSL.
func RGBToHSL(rgb RGB) HSL {
	h, s, l := rgb.toColorful().Hsl()
	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts hsl to 8-bit RGB. Hue is taken modulo 360;
// saturation and lightness are clamped to [0, 1].
func HSLToRGB(hsl HSL) RGB {
	r, g, b := hsl.toColorful().Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// HexToHSL converts a color token to HSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return HSL{}, err
	}
	h, s, l := c.Hsl()
	return HSL{H: h, S: s, L: l}, nil
}

// HSLToHex formats hsl as "#rrggbb".
func HSLToHex(hsl HSL) string {
	return toHex(hsl.toColorful())
}

// HexToLab converts a color token to CIE Lab.
func HexToLab(hex string) (Lab, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return Lab{}, err
	}
	return labOf(c), nil
}

// LabToHex formats lab as "#rrggbb". Colors outside the sRGB gamut are clamped.
func LabToHex(lab Lab) string {
	return toHex(lab.toColorful())
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func (c HSL) toColorful() colorful.Color {
	return colorful.Hsl(normalizeHue(c.H), clamp01(c.S), clamp01(c.L))
}

func (c Lab) toColorful() colorful.Color {
	return colorful.Lab(c.L/labScale, c.A/labScale, c.B/labScale)
}

func labOf(c colorful.Color) Lab {
	l, a, b := c.Lab()
	return Lab{L: l * labScale, A: a * labScale, B: b * labScale}
}

// normalizeHue maps h into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
