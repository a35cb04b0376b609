package crease

import "github.com/hejijunhao/crease/internal/engine/classifier"

// Result is the outcome of analysing one scenario. It is either a success
// (Analysis and WinProbability set, Error nil) or a rejection (Error set,
// the other two nil). Absent fields encode as JSON null.
type Result struct {
	Analysis       *string `json:"analysis"`
	WinProbability *int    `json:"winProbability"`
	Error          *string `json:"error"`
}

// Band describes the probability category of a successful result.
type Band struct {
	Name  string `json:"name"`  // strong_favourite, slight_edge, under_pressure, long_shot
	Label string `json:"label"` // e.g. "Strong Favourite"
}

// OK reports whether the result is a success.
func (r Result) OK() bool {
	return r.Error == nil
}

// Band returns the probability band, or the zero Band for a rejection.
func (r Result) Band() Band {
	if r.WinProbability == nil {
		return Band{}
	}
	b := classifier.Classify(*r.WinProbability)
	return Band{Name: b.Name, Label: b.Label}
}
