package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a labelled scenario for engine validation.
type CorpusEntry struct {
	Raw                 string `json:"raw"`
	ExpectedProbability int    `json:"expected_probability"`
	ExpectedBand        string `json:"expected_band"`
	ExpectedRuns        *int   `json:"expected_runs"`
	ExpectedBalls       *int   `json:"expected_balls"`
	ExpectedWickets     *int   `json:"expected_wickets"`
	ExpectedOvers       *int   `json:"expected_overs"`
	Description         string `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
