package crease

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hejijunhao/crease/internal/engine/cues"
)

// Cue set names accepted by the cue options.
const (
	CueBatting      = cues.Batting
	CueHighPressure = cues.HighPressure
	CueMomentum     = cues.Momentum
	CueCollapseRisk = cues.CollapseRisk
)

type cueEdit struct {
	name     string
	keywords []string
	replace  bool
}

type options struct {
	cueEdits []cueEdit
}

// Option configures an Analyzer.
type Option func(*options)

// WithCueKeywords replaces the keywords of the named cue set.
func WithCueKeywords(name string, keywords ...string) Option {
	return func(o *options) {
		o.cueEdits = append(o.cueEdits, cueEdit{name: name, keywords: keywords, replace: true})
	}
}

// WithExtraCueKeywords adds keywords to the named cue set, e.g. regional
// phrasing such as "chase down" for batting.
func WithExtraCueKeywords(name string, keywords ...string) Option {
	return func(o *options) {
		o.cueEdits = append(o.cueEdits, cueEdit{name: name, keywords: keywords})
	}
}

func defaultOptions() options {
	return options{}
}

// resolveCueSets applies the edits, in order, to the built-in sets.
func resolveCueSets(o options) ([]cues.Set, error) {
	sets := cues.DefaultSets()
	for _, e := range o.cueEdits {
		i := slices.IndexFunc(sets, func(s cues.Set) bool { return s.Name == e.name })
		if i < 0 {
			return nil, fmt.Errorf("unknown cue set %q", e.name)
		}
		if e.replace && len(e.keywords) == 0 {
			return nil, fmt.Errorf("cue set %q: no keywords", e.name)
		}
		for _, kw := range e.keywords {
			if strings.TrimSpace(kw) == "" {
				return nil, fmt.Errorf("cue set %q: empty keyword", e.name)
			}
		}
		if e.replace {
			sets[i].Keywords = slices.Clone(e.keywords)
		} else {
			sets[i].Keywords = append(slices.Clone(sets[i].Keywords), e.keywords...)
		}
	}
	return sets, nil
}
