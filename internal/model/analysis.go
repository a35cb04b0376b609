package model

// Band is the probability category shown alongside a win probability.
type Band struct {
	Name  string // strong_favourite, slight_edge, under_pressure, long_shot
	Label string // human label, e.g. "Strong Favourite"
}

// Analysis is the engine's output for one accepted scenario.
type Analysis struct {
	Scenario       Scenario
	WinProbability int    // clamped to [3, 97]
	Band           Band   // derived from WinProbability
	Text           string // narrative paragraph
}
