package model

// Scenario is the structured reading of a free-text match situation.
// Numeric fields are nil when the text carries no qualifying number.
type Scenario struct {
	Runs    *int // target or required runs
	Balls   *int // balls remaining
	Wickets *int // wickets in hand
	Overs   *int // informational only, not used by the estimator or narrative

	IsBatting      bool // subject is the chasing side
	IsHighPressure bool // late-match tension cues
	HasMomentum    bool // batting momentum cues
	IsCollapseRisk bool // tail / collapse cues

	NormalizedText string // lower-cased input, used for seeding and cue checks
}

// HasChase reports whether both runs and balls were extracted.
func (s Scenario) HasChase() bool {
	return s.Runs != nil && s.Balls != nil
}

// IntOr returns *p, or fallback when p is nil.
func IntOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
