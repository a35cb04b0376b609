package narrative

import (
	"fmt"
	"math"
	"strings"

	"github.com/hejijunhao/crease/internal/engine/classifier"
	"github.com/hejijunhao/crease/internal/engine/estimator"
	"github.com/hejijunhao/crease/internal/model"
)

// Generate builds the commentary paragraph for a scenario and its win
// probability. Output is deterministic: phrase selection is seeded from the
// scenario itself.
func Generate(s model.Scenario, winProbability int) string {
	seed := textLength(s.NormalizedText) + model.IntOr(s.Runs, 0) + model.IntOr(s.Balls, 0)

	lines := []string{pick(openingLines, seed)}

	if line, ok := rateLine(s); ok {
		lines = append(lines, line)
	}
	if s.Wickets != nil {
		lines = append(lines, wicketsLine(*s.Wickets, s.IsCollapseRisk))
	}
	if s.IsHighPressure {
		lines = append(lines, highPressureLine)
	}
	if s.HasMomentum {
		lines = append(lines, momentumLine)
	}

	lines = append(lines, probabilityLine(winProbability))
	lines = append(lines, pick(closingLines, seed+1))

	return strings.Join(lines, " ")
}

// pick indexes pool by seed. Seeds are non-negative except on int overflow,
// which is folded back into range.
func pick(pool []string, seed int) string {
	i := seed % len(pool)
	if i < 0 {
		i += len(pool)
	}
	return pool[i]
}

func rateLine(s model.Scenario) (string, bool) {
	switch {
	case s.HasChase():
		runs, balls := *s.Runs, *s.Balls
		rate := rateFor(runs, balls)
		if balls <= 6 {
			return fmt.Sprintf("With just %d ball%s remaining and %d runs needed, the required rate is a staggering %s per over — a near-impossible ask that will demand back-to-back maximums.",
				balls, plural(balls > 1), runs, formatRate(rate)), true
		}
		return fmt.Sprintf("%d runs off %d balls translates to a required run rate of %s — %s.",
			runs, balls, formatRate(rate), chaseDifficulty(roundedRate(rate))), true
	case s.Runs != nil:
		return fmt.Sprintf(runsContextFormat, *s.Runs), true
	default:
		return "", false
	}
}

// rateFor is the displayed required rate. Unlike estimator.RequiredRate it
// keeps the 0/0 case undefined so it renders as NaN.
func rateFor(runs, balls int) float64 {
	if balls == 0 && runs == 0 {
		return math.NaN()
	}
	return estimator.RequiredRate(runs, balls)
}

func chaseDifficulty(rate float64) string {
	switch {
	case rate > 12:
		return "a Herculean target that even the best finishers would struggle with"
	case rate > 9:
		return "challenging but achievable with clean hitting and no panic"
	default:
		return "a gettable target if the batting side keeps their heads"
	}
}

func wicketsLine(wickets int, collapseRisk bool) string {
	switch {
	case wickets <= 1:
		tail := lastWicketLine
		if collapseRisk {
			tail = collapseTailLine
		}
		return fmt.Sprintf("Crucially, the batting side has only %d wicket%s remaining. %s",
			wickets, plural(wickets != 1), tail)
	case wickets <= 3:
		return fmt.Sprintf("%d wickets in hand gives them some buffer, but a quick breakthrough could send the tail crumbling. The fielding side will be hunting for the danger batter aggressively.", wickets)
	default:
		return fmt.Sprintf("With %d wickets available, the batting side has the luxury of intent — they can play their shots without fear of immediate collapse.", wickets)
	}
}

func probabilityLine(p int) string {
	switch classifier.Classify(p).Name {
	case classifier.StrongFavourite:
		return fmt.Sprintf("At %d%% win probability, the batting side are clear favourites — but in cricket, nothing is guaranteed until that final run is scored.", p)
	case classifier.SlightEdge:
		return fmt.Sprintf("The %d%% win probability reflects a genuine contest. This match is on a razor's edge, and both sides have real reasons to believe.", p)
	case classifier.UnderPressure:
		return fmt.Sprintf("A %d%% chance is daunting, but cricket has seen bigger upsets. They'll need something extraordinary — a big over, or a rapid collapse from the opposition.", p)
	default:
		return fmt.Sprintf("At just %d%%, this is a long shot — but sport loves a miracle. Stranger things have happened on a cricket pitch.", p)
	}
}

func plural(many bool) string {
	if many {
		return "s"
	}
	return ""
}
