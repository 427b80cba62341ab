package colorutil

import (
	"errors"
	"strconv"
)

// Sentinel errors for colorutil package.
var (
	// ErrInvalidColorFormat is returned when a string cannot be parsed as a color.
	ErrInvalidColorFormat = errors.New("colorutil: invalid color format")

	// ErrUnknownBlendMode is returned by ParseBlendMode for unrecognized names.
	ErrUnknownBlendMode = errors.New("colorutil: unknown blend mode")

	// ErrUnknownMetric is returned by ParseMetric for unrecognized names.
	ErrUnknownMetric = errors.New("colorutil: unknown distance metric")
)

// InvalidColorError is returned when a color token is neither a
// 3- or 6-digit hex color nor a known color name.
type InvalidColorError struct {
	Input string
}

func (e *InvalidColorError) Error() string {
	return "colorutil: invalid color format " + strconv.Quote(e.Input)
}

// Unwrap lets errors.Is match ErrInvalidColorFormat.
func (e *InvalidColorError) Unwrap() error {
	return ErrInvalidColorFormat
}
