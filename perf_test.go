package colorutil

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLogPerf_LogsDuration(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	timed := LogPerf("SelectDistinct", slog.LevelInfo, SelectDistinct)
	got, err := timed(primaries, 3, 20)
	if err != nil {
		t.Fatalf("timed() error = %v", err)
	}

	want, _ := SelectDistinct(primaries, 3, 20)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LogPerf changed the result (-want +got):\n%s", diff)
	}

	out := buf.String()
	for _, s := range []string{"SelectDistinct took", "level=INFO", "duration=", "candidates=9", "selected=3"} {
		if !strings.Contains(out, s) {
			t.Errorf("log output missing %q: %s", s, out)
		}
	}
	if strings.Contains(out, "err=") {
		t.Errorf("unexpected err attribute: %s", out)
	}
}

func TestLogPerf_PropagatesError(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	timed := LogPerf("SelectDistinct", slog.LevelWarn, SelectDistinct)
	_, err := timed([]string{"#ff0000", "bogus"}, 2, 10)
	if !errors.Is(err, ErrInvalidColorFormat) {
		t.Fatalf("timed() error = %v, want ErrInvalidColorFormat", err)
	}
	if !strings.Contains(buf.String(), "err=") {
		t.Errorf("log output missing err attribute: %s", buf.String())
	}
}

func TestLogPerf_DisabledLevelSkipsLogging(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	calls := 0
	fn := func(candidates []string, count int, threshold float64, opts ...SelectOption) ([]string, error) {
		calls++
		return SelectDistinct(candidates, count, threshold, opts...)
	}
	got, err := LogPerf("quiet", slog.LevelDebug, fn)(primaries, 2, 20)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 || len(got) != 2 {
		t.Errorf("calls = %d, result = %v", calls, got)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got: %s", buf.String())
	}
}

func TestLogPerf_ForwardsOptions(t *testing.T) {
	candidates := []string{"#ff0000", "#f00000"}
	timed := LogPerf("SelectDistinct", slog.LevelInfo, SelectDistinct)
	got, err := timed(candidates, 2, 4, WithMetric(MetricCIE76))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("options not forwarded: got %v", got)
	}
}
