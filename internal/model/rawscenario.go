package model

// RawScenario is the intermediate type produced by sources and consumed by the pipeline.
type RawScenario struct {
	Text   string // scenario text as read, untrimmed
	Source string // source name (e.g. "lines", "yaml")
	Line   int    // 1-based position within the input stream
}
