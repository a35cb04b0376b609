package text

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hejijunhao/crease/internal/output"
)

func success(p int, band string) output.Record {
	analysis := "This is a knife-edge finish."
	runs := 20
	return output.Record{
		Line:           1,
		Scenario:       "India needs 20 runs in 6 balls, 2 wickets left",
		Analysis:       &analysis,
		WinProbability: &p,
		Band:           band,
		Parsed:         &output.Parsed{Runs: &runs, IsBatting: true, IsCollapseRisk: true},
	}
}

func TestWriteSuccessCard(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, output.Standard)
	if err := out.Write(context.Background(), success(3, "Long Shot")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	want := `Scenario: "India needs 20 runs in 6 balls, 2 wickets left"
Win probability: 3% (Long Shot)
[#...................]

This is a knife-edge finish.

` + Disclaimer + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteFullIncludesBreakdown(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, output.Full)
	out.Write(context.Background(), success(3, "Long Shot"))

	if !strings.Contains(buf.String(), "Parsed: runs=20 balls=- wickets=- overs=- batting collapse-risk\n") {
		t.Fatalf("missing breakdown in:\n%s", buf.String())
	}
}

func TestWriteMinimal(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, output.Minimal)
	out.Write(context.Background(), success(75, "Strong Favourite"))
	out.Close()

	got := buf.String()
	if strings.Contains(got, "Scenario:") || strings.Contains(got, Disclaimer) {
		t.Fatalf("Minimal should omit echo and disclaimer:\n%s", got)
	}
	if !strings.HasPrefix(got, "Win probability: 75% (Strong Favourite)\n") {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestWriteRejection(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, output.Standard)
	msg := "Please enter a match scenario with enough detail to analyze."
	out.Write(context.Background(), output.Record{Line: 7, Scenario: "abc", Error: &msg})
	out.Write(context.Background(), output.Record{Error: &msg})
	out.Close()

	want := "error: line 7: " + msg + "\n\nerror: " + msg + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGauge(t *testing.T) {
	tests := []struct {
		p    int
		want string
	}{
		{0, "[....................]"},
		{3, "[#...................]"},
		{50, "[##########..........]"},
		{97, "[###################.]"},
		{100, "[####################]"},
	}
	for _, tt := range tests {
		if got := Gauge(tt.p); got != tt.want {
			t.Errorf("Gauge(%d) = %s, want %s", tt.p, got, tt.want)
		}
	}
}
