// Package colorutil provides color conversions, palette generation and
// perceptual color selection for Go.
//
// # Overview
//
// colorutil is a stateless library of pure functions. Colors are passed
// around as strings ("#ff0000", "f00", "darkslateblue") and every color
// returned by the package is normalized to lowercase "#rrggbb". Color math
// is delegated to github.com/lucasb-eyer/go-colorful.
//
// # Quick Start
//
//	import "github.com/gogpu/colorutil"
//
//	// Pick up to 5 colors that are clearly different from each other
//	colors, err := colorutil.SelectDistinct(candidates, 5, 20)
//
//	// Build palettes
//	shades, _ := colorutil.Shades("#3498db", 5)
//	comp, _ := colorutil.Complementary("#3498db")
//
// # Distinct Colors
//
// [SelectDistinct] greedily keeps candidates whose perceptual distance to
// every color kept so far is strictly greater than a threshold. Distance is
// measured by a [ColorSpace]; the default converts to CIE Lab and uses the
// CIEDE2000 formula, where a distance of about 2 is barely noticeable and
// 20 or more reads as a different color.
//
// # Architecture
//
// The package is organized into:
//   - Parsing and conversions: ParseColor, Normalize, HexToRGB, HexToHSL, HexToLab
//   - Distance: ColorSpace, Metric, CachedColorSpace
//   - Selection: SelectDistinct, SelectOption, LogPerf
//   - Generators: Complementary, Analogous, Triadic, Monochromatic, Shades, Tints
//   - Mixing and accessibility: Blend, ContrastRatio, RelativeLuminance
//
// # Errors
//
// Every function that accepts a color token returns an error matching
// [ErrInvalidColorFormat] when the token cannot be parsed. Errors are
// never swallowed: a bad candidate fails the whole call.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package colorutil

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
