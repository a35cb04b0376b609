package parser

import (
	"math"
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"

	"github.com/hejijunhao/crease/internal/engine/cues"
	"github.com/hejijunhao/crease/internal/model"
)

func intp(n int) *int { return &n }

func TestParse(t *testing.T) {
	p := New(cues.Default())

	tests := []struct {
		name  string
		input string
		want  model.Scenario
	}{
		{
			name:  "full chase",
			input: "India needs 20 runs in 6 balls, 2 wickets left",
			want: model.Scenario{
				Runs: intp(20), Balls: intp(6), Wickets: intp(2),
				IsBatting:      true,
				NormalizedText: "india needs 20 runs in 6 balls, 2 wickets left",
			},
		},
		{
			name:  "fallback runs and overs",
			input: "Australia chasing 280, 220/4 after 40 overs",
			want: model.Scenario{
				Runs: intp(280), Overs: intp(40),
				IsBatting:      true,
				NormalizedText: "australia chasing 280, 220/4 after 40 overs",
			},
		},
		{
			name:  "no numbers",
			input: "The tail must win this for them",
			want: model.Scenario{
				IsHighPressure: true,
				IsCollapseRisk: true,
				NormalizedText: "the tail must win this for them",
			},
		},
		{
			name:  "explicit run match beats a large leading number",
			input: "In 2024 they need 45 runs off 30 balls",
			want: model.Scenario{
				Runs: intp(45), Balls: intp(30),
				IsBatting:      true,
				NormalizedText: "in 2024 they need 45 runs off 30 balls",
			},
		},
		{
			name:  "leading number below bound wins over later run phrase",
			input: "Over 19: 14 runs needed",
			want: model.Scenario{
				Runs:           intp(19),
				IsBatting:      true,
				NormalizedText: "over 19: 14 runs needed",
			},
		},
		{
			name:  "wkt abbreviation",
			input: "Bowling side defending, 3 wkt down",
			want: model.Scenario{
				Runs: intp(3), Wickets: intp(3),
				NormalizedText: "bowling side defending, 3 wkt down",
			},
		},
		{
			name:  "suffix match is a plain substring",
			input: "2 wickets left, 12 balls to go",
			want: model.Scenario{
				Runs: intp(2), Balls: intp(2), Wickets: intp(2),
				NormalizedText: "2 wickets left, 12 balls to go",
			},
		},
		{
			name:  "upper case and momentum",
			input: "SMASHING it: NEED 999999 RUNS",
			want: model.Scenario{
				Runs:           intp(999999),
				IsBatting:      true,
				HasMomentum:    true,
				NormalizedText: "smashing it: need 999999 runs",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	p := New(cues.Default())
	in := "Pakistan require 36 runs off the last over with 1 wicket, panic in the camp"
	if diff := cmp.Diff(p.Parse(in), p.Parse(in)); diff != "" {
		t.Fatalf("Parse not idempotent:\n%s", diff)
	}
}

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		text string
		want []int
	}{
		{"", nil},
		{"no digits", nil},
		{"220/4", []int{220, 4}},
		{"-5 runs", []int{5}},
		{"007 and 1.5", []int{7, 1, 5}},
		{"99999999999999999999999", []int{math.MaxInt}},
		{"end42", []int{42}},
	}
	for _, tt := range tests {
		got := extractNumbers(tt.text)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("extractNumbers(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestNormalizeKeepsDecomposedText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"E\u0301TE", "e\u0301te"},
		{"\u00c9TE", "\u00e9te"},
		{"Mu\u0308ller NEEDS 30", "mu\u0308ller needs 30"},
	}
	for _, tt := range tests {
		got := normalize(tt.in)
		if got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	// The combining mark stays a separate code unit, so the two spellings
	// differ in length and seed the narrative differently.
	decomposed := New(cues.Default()).Parse("Mu\u0308ller needs 30 runs off 24 balls")
	composed := New(cues.Default()).Parse("M\u00fcller needs 30 runs off 24 balls")
	if len(decomposed.NormalizedText) == len(composed.NormalizedText) {
		t.Fatalf("decomposed text was composed: %q", decomposed.NormalizedText)
	}
	if utf16Len(decomposed.NormalizedText) != utf16Len(composed.NormalizedText)+1 {
		t.Errorf("decomposed length = %d, composed length = %d", utf16Len(decomposed.NormalizedText), utf16Len(composed.NormalizedText))
	}
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}
