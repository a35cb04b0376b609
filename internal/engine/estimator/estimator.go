package estimator

import (
	"math"

	"github.com/hejijunhao/crease/internal/model"
)

// Bounds of the returned probability.
const (
	MinProbability = 3
	MaxProbability = 97
)

const neutralScore = 50

// rateBand maps a required run rate ceiling (inclusive) to a base score.
type rateBand struct {
	maxRate float64
	score   float64
}

// rateBands is ordered by ascending ceiling; the first band whose ceiling is
// at or above the rate applies. Rates above the last ceiling score rateFloor.
var rateBands = []rateBand{
	{6, 78},
	{9, 62},
	{12, 44},
	{15, 28},
	{18, 16},
}

const rateFloor = 8

// Context modifiers, applied after the perspective flip.
const (
	highPressureDelta = -5
	momentumDelta     = 8
	collapseRiskDelta = -12
)

// RequiredRate returns runs per over needed from the remaining balls.
// Zero balls yields +Inf.
func RequiredRate(runs, balls int) float64 {
	if balls <= 0 {
		return math.Inf(1)
	}
	return float64(runs) / float64(balls) * 6
}

// Estimate computes the heuristic win probability for the side the scenario
// is written about. The result is always within [MinProbability, MaxProbability].
func Estimate(s model.Scenario) int {
	score := float64(neutralScore)
	if s.HasChase() {
		score = baseScore(RequiredRate(*s.Runs, *s.Balls))
	}

	if s.Wickets != nil {
		score += wicketsDelta(*s.Wickets)
	}

	// The cascade models the batting side; flip for the bowling side.
	if !s.IsBatting {
		score = 100 - score
	}

	if s.IsHighPressure {
		score += highPressureDelta
	}
	if s.HasMomentum {
		score += momentumDelta
	}
	if s.IsCollapseRisk {
		score += collapseRiskDelta
	}

	return clamp(int(math.Round(score)))
}

func baseScore(rrr float64) float64 {
	for _, b := range rateBands {
		if rrr <= b.maxRate {
			return b.score
		}
	}
	return rateFloor
}

// wicketsDelta leaves 0 and 3 wickets unadjusted.
func wicketsDelta(w int) float64 {
	switch {
	case w >= 7:
		return 12
	case w >= 4:
		return 5
	case w == 2:
		return -10
	case w == 1:
		return -18
	default:
		return 0
	}
}

func clamp(p int) int {
	return max(MinProbability, min(MaxProbability, p))
}
