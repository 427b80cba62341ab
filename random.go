package colorutil

import "math/rand/v2"

// RandomColor returns a uniformly random opaque color as "#rrggbb".
// It uses the global math/rand/v2 source and is safe for concurrent use.
func RandomColor() string {
	return randomColor(rand.Uint32)
}

// RandomColorRand is like RandomColor but draws from r.
// A seeded r makes the sequence reproducible. r must not be shared
// between goroutines.
func RandomColorRand(r *rand.Rand) string {
	return randomColor(r.Uint32)
}

// RandomColors returns n random colors drawn from r, or from the global
// source when r is nil.
func RandomColors(r *rand.Rand, n int) []string {
	next := rand.Uint32
	if r != nil {
		next = r.Uint32
	}
	out := make([]string, max(n, 0))
	for i := range out {
		out[i] = randomColor(next)
	}
	return out
}

func randomColor(next func() uint32) string {
	v := next()
	return RGBToHex(RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)})
}
