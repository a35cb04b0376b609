package output

import "fmt"

// Verbosity controls how much detail a record retains.
type Verbosity int

const (
	Minimal  Verbosity = iota // result fields only
	Standard                  // plus a truncated scenario echo
	Full                      // plus the full echo and parsed breakdown
)

// maxEchoLen is the scenario echo limit at Standard, in runes.
const maxEchoLen = 400

// ParseVerbosity maps "minimal", "standard" or "full" to a Verbosity.
func ParseVerbosity(s string) (Verbosity, error) {
	switch s {
	case "minimal":
		return Minimal, nil
	case "standard", "":
		return Standard, nil
	case "full":
		return Full, nil
	default:
		return Standard, fmt.Errorf("unknown verbosity %q", s)
	}
}

func (v Verbosity) String() string {
	switch v {
	case Minimal:
		return "minimal"
	case Full:
		return "full"
	default:
		return "standard"
	}
}

// FormatRecord returns a copy of the record with fields stripped according
// to verbosity. At Minimal the echo, line and breakdown are dropped; at
// Standard the breakdown is dropped and the echo truncated.
func FormatRecord(r Record, v Verbosity) Record {
	switch v {
	case Minimal:
		r.Line = 0
		r.Scenario = ""
		r.Parsed = nil
	case Standard:
		r.Scenario = truncate(r.Scenario, maxEchoLen)
		r.Parsed = nil
	}
	return r
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
