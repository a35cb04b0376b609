package classifier

import "github.com/hejijunhao/crease/internal/model"

// Band names.
const (
	StrongFavourite = "strong_favourite"
	SlightEdge      = "slight_edge"
	UnderPressure   = "under_pressure"
	LongShot        = "long_shot"
)

// threshold is the inclusive lower bound of a band.
type threshold struct {
	min  int
	band model.Band
}

// thresholds is ordered from the highest bound down; the first match wins.
var thresholds = []threshold{
	{70, model.Band{Name: StrongFavourite, Label: "Strong Favourite"}},
	{50, model.Band{Name: SlightEdge, Label: "Slight Edge"}},
	{30, model.Band{Name: UnderPressure, Label: "Under Pressure"}},
}

var longShot = model.Band{Name: LongShot, Label: "Long Shot"}

// Classify returns the band for a win probability.
func Classify(winProbability int) model.Band {
	for _, t := range thresholds {
		if winProbability >= t.min {
			return t.band
		}
	}
	return longShot
}

// Bands lists every band from strongest to weakest.
func Bands() []model.Band {
	out := make([]model.Band, 0, len(thresholds)+1)
	for _, t := range thresholds {
		out = append(out, t.band)
	}
	return append(out, longShot)
}
