package text

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hejijunhao/crease/internal/output"
)

const gaugeCells = 20

// Disclaimer is printed once after the last successful card.
const Disclaimer = "Heuristic insight for entertainment purposes only. Predictions are not guarantees."

// Output renders records as human-readable cards.
type Output struct {
	w         io.Writer
	verbosity output.Verbosity
	written   int
	successes int
}

// New creates a text Output writing to w.
func New(w io.Writer, verbosity output.Verbosity) *Output {
	return &Output{w: w, verbosity: verbosity}
}

func (o *Output) Write(_ context.Context, rec output.Record) error {
	rec = output.FormatRecord(rec, o.verbosity)

	var b strings.Builder
	if o.written > 0 {
		b.WriteString("\n")
	}
	o.written++

	if !rec.OK() {
		if rec.Line > 0 {
			fmt.Fprintf(&b, "error: line %d: %s\n", rec.Line, *rec.Error)
		} else {
			fmt.Fprintf(&b, "error: %s\n", *rec.Error)
		}
		return o.flush(b.String())
	}
	o.successes++

	if rec.Scenario != "" {
		fmt.Fprintf(&b, "Scenario: %q\n", rec.Scenario)
	}
	p := *rec.WinProbability
	fmt.Fprintf(&b, "Win probability: %d%% (%s)\n", p, rec.Band)
	fmt.Fprintf(&b, "%s\n", Gauge(p))
	if rec.Parsed != nil {
		fmt.Fprintf(&b, "Parsed: %s\n", describe(rec.Parsed))
	}
	fmt.Fprintf(&b, "\n%s\n", *rec.Analysis)
	return o.flush(b.String())
}

// Close prints the disclaimer when at least one card was rendered.
func (o *Output) Close() error {
	if o.successes == 0 || o.verbosity == output.Minimal {
		return nil
	}
	return o.flush("\n" + Disclaimer + "\n")
}

func (o *Output) flush(s string) error {
	if _, err := io.WriteString(o.w, s); err != nil {
		return fmt.Errorf("text output: %w", err)
	}
	return nil
}

// Gauge draws p on a 0–100 scale, one cell per five points.
func Gauge(p int) string {
	filled := min(gaugeCells, max(0, (p+2)/5))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", gaugeCells-filled) + "]"
}

func describe(p *output.Parsed) string {
	parts := []string{
		"runs=" + intOrDash(p.Runs),
		"balls=" + intOrDash(p.Balls),
		"wickets=" + intOrDash(p.Wickets),
		"overs=" + intOrDash(p.Overs),
	}
	flags := []struct {
		on   bool
		name string
	}{
		{p.IsBatting, "batting"},
		{p.IsHighPressure, "high-pressure"},
		{p.HasMomentum, "momentum"},
		{p.IsCollapseRisk, "collapse-risk"},
	}
	for _, f := range flags {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, " ")
}

func intOrDash(p *int) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprint(*p)
}
