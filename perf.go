package colorutil

import (
	"context"
	"log/slog"
	"time"
)

// SelectFunc has the signature of SelectDistinct.
// Wrappers such as LogPerf take and return a SelectFunc.
type SelectFunc func(candidates []string, count int, threshold float64, opts ...SelectOption) ([]string, error)

// LogPerf wraps fn so that every call logs its wall-clock duration at
// level through Logger(). Results and errors are returned unchanged.
//
// When the current logger is disabled for level, fn is called directly
// and nothing is measured.
//
// Example:
//
//	selectDistinct := colorutil.LogPerf("SelectDistinct", slog.LevelInfo, colorutil.SelectDistinct)
//	colors, err := selectDistinct(candidates, 3, 20)
func LogPerf(name string, level slog.Level, fn SelectFunc) SelectFunc {
	return func(candidates []string, count int, threshold float64, opts ...SelectOption) ([]string, error) {
		ctx := context.Background()
		logger := Logger()
		if !logger.Enabled(ctx, level) {
			return fn(candidates, count, threshold, opts...)
		}

		start := time.Now()
		result, err := fn(candidates, count, threshold, opts...)
		elapsed := time.Since(start)

		attrs := []slog.Attr{
			slog.Duration("duration", elapsed),
			slog.Int("candidates", len(candidates)),
			slog.Int("selected", len(result)),
		}
		if err != nil {
			attrs = append(attrs, slog.Any("err", err))
		}
		logger.LogAttrs(ctx, level, name+" took", attrs...)
		return result, err
	}
}
