package cues

// Cue set names.
const (
	Batting      = "batting"
	HighPressure = "high_pressure"
	Momentum     = "momentum"
	CollapseRisk = "collapse_risk"
)

// DefaultSets returns the built-in cue sets that ship with crease.
func DefaultSets() []Set {
	return []Set{
		{
			Name:     Batting,
			Desc:     "Subject is the chasing or batting side",
			Keywords: []string{"needs", "need", "chasing", "require", "target"},
		},
		{
			Name:     HighPressure,
			Desc:     "Late-match tension",
			Keywords: []string{"final", "last over", "super over", "final ball", "must win"},
		},
		{
			Name:     Momentum,
			Desc:     "Batting side has momentum",
			Keywords: []string{"on fire", "momentum", "six off every", "smashing", "dominant"},
		},
		{
			Name:     CollapseRisk,
			Desc:     "Batting order exposed to a collapse",
			Keywords: []string{"collapse", "panic", "tail", "last wicket", "last pair"},
		},
	}
}
