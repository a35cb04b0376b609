package output

import (
	"errors"

	"github.com/hejijunhao/crease/internal/engine"
	"github.com/hejijunhao/crease/internal/model"
)

// Record is one rendered result. Exactly one of (Analysis, WinProbability)
// or Error is set.
type Record struct {
	Line           int     `json:"line,omitempty" yaml:"line,omitempty"`
	Scenario       string  `json:"scenario,omitempty" yaml:"scenario,omitempty"`
	Analysis       *string `json:"analysis" yaml:"analysis"`
	WinProbability *int    `json:"winProbability" yaml:"winProbability"`
	Band           string  `json:"band,omitempty" yaml:"band,omitempty"`
	Error          *string `json:"error" yaml:"error"`
	Parsed         *Parsed `json:"parsed,omitempty" yaml:"parsed,omitempty"`
}

// Parsed is the scenario breakdown included at Full verbosity.
type Parsed struct {
	Runs           *int `json:"runs" yaml:"runs"`
	Balls          *int `json:"balls" yaml:"balls"`
	Wickets        *int `json:"wickets" yaml:"wickets"`
	Overs          *int `json:"overs" yaml:"overs"`
	IsBatting      bool `json:"isBatting" yaml:"isBatting"`
	IsHighPressure bool `json:"isHighPressure" yaml:"isHighPressure"`
	HasMomentum    bool `json:"hasMomentum" yaml:"hasMomentum"`
	IsCollapseRisk bool `json:"isCollapseRisk" yaml:"isCollapseRisk"`
}

// OK reports whether the record is a success.
func (r Record) OK() bool {
	return r.Error == nil
}

// NewRecord builds a full-detail record from an engine result. Apply
// FormatRecord before writing to honour verbosity.
func NewRecord(raw model.RawScenario, a model.Analysis, err error) Record {
	rec := Record{Line: raw.Line, Scenario: raw.Text}
	if err != nil {
		msg := err.Error()
		if errors.Is(err, engine.ErrInsufficientInput) {
			msg = engine.InsufficientInputMessage
		}
		rec.Error = &msg
		return rec
	}

	text, p := a.Text, a.WinProbability
	rec.Analysis = &text
	rec.WinProbability = &p
	rec.Band = a.Band.Label

	s := a.Scenario
	rec.Parsed = &Parsed{
		Runs:           s.Runs,
		Balls:          s.Balls,
		Wickets:        s.Wickets,
		Overs:          s.Overs,
		IsBatting:      s.IsBatting,
		IsHighPressure: s.IsHighPressure,
		HasMomentum:    s.HasMomentum,
		IsCollapseRisk: s.IsCollapseRisk,
	}
	return rec
}
