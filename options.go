package colorutil

// SelectOption configures a SelectDistinct call.
// Use functional options to customize how colors are compared.
//
// Example:
//
//	// Default CIEDE2000 comparison
//	colors, err := colorutil.SelectDistinct(candidates, 5, 20)
//
//	// Plain Euclidean Lab distance
//	colors, err := colorutil.SelectDistinct(candidates, 5, 20,
//	    colorutil.WithMetric(colorutil.MetricCIE76))
type SelectOption func(*selectOptions)

// selectOptions holds optional configuration for SelectDistinct.
type selectOptions struct {
	space ColorSpace
}

// defaultSelectOptions returns the default selection options.
func defaultSelectOptions() selectOptions {
	return selectOptions{
		space: DefaultColorSpace,
	}
}

// WithColorSpace sets the ColorSpace used to convert and compare candidates.
// Use this for dependency injection of custom or cached spaces.
// A nil space keeps the default.
//
// Example:
//
//	cs := colorutil.NewCachedColorSpace(nil, 1024)
//	colors, err := colorutil.SelectDistinct(candidates, 5, 20, colorutil.WithColorSpace(cs))
func WithColorSpace(cs ColorSpace) SelectOption {
	return func(o *selectOptions) {
		if cs != nil {
			o.space = cs
		}
	}
}

// WithMetric compares candidates with a stateless space using metric m.
// It replaces any space set by an earlier WithColorSpace.
func WithMetric(m Metric) SelectOption {
	return func(o *selectOptions) {
		o.space = NewColorSpace(m)
	}
}
