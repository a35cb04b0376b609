package cues

import "strings"

// Set is a named group of keywords. The set matches when any keyword is a
// substring of the text.
type Set struct {
	Name     string
	Desc     string
	Keywords []string
}

// Flags holds the outcome of matching text against the default sets.
type Flags struct {
	Batting      bool
	HighPressure bool
	Momentum     bool
	CollapseRisk bool
}

// Matcher evaluates text against a fixed collection of cue sets.
// It is immutable after New and safe for concurrent use.
type Matcher struct {
	sets []Set
}

// New creates a Matcher from the given sets. Keywords are lower-cased;
// callers are expected to pass lower-cased text to Match.
func New(sets []Set) *Matcher {
	m := &Matcher{sets: make([]Set, len(sets))}
	for i, s := range sets {
		kws := make([]string, len(s.Keywords))
		for j, kw := range s.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		m.sets[i] = Set{Name: s.Name, Desc: s.Desc, Keywords: kws}
	}
	return m
}

// Default returns a Matcher over DefaultSets.
func Default() *Matcher {
	return New(DefaultSets())
}

// Has reports whether the named set matches text. Unknown names never match.
func (m *Matcher) Has(name, text string) bool {
	for _, s := range m.sets {
		if s.Name == name {
			return containsAny(text, s.Keywords)
		}
	}
	return false
}

// Match evaluates the four well-known sets against text.
func (m *Matcher) Match(text string) Flags {
	return Flags{
		Batting:      m.Has(Batting, text),
		HighPressure: m.Has(HighPressure, text),
		Momentum:     m.Has(Momentum, text),
		CollapseRisk: m.Has(CollapseRisk, text),
	}
}

// Sets returns a copy of the configured sets.
func (m *Matcher) Sets() []Set {
	out := make([]Set, len(m.sets))
	for i, s := range m.sets {
		out[i] = Set{Name: s.Name, Desc: s.Desc, Keywords: append([]string(nil), s.Keywords...)}
	}
	return out
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
