package crease

import (
	"errors"
	"fmt"

	"github.com/hejijunhao/crease/internal/engine"
	"github.com/hejijunhao/crease/internal/engine/classifier"
	"github.com/hejijunhao/crease/internal/engine/cues"
	"github.com/hejijunhao/crease/internal/engine/parser"
	"github.com/hejijunhao/crease/internal/model"
)

// Analyzer turns scenarios into results using a fixed set of cues.
// Safe for concurrent use.
type Analyzer struct {
	engine *engine.Engine
	cues   *cues.Matcher
}

// New creates an Analyzer. Without options it behaves exactly like the
// package-level Analyze.
func New(opts ...Option) (*Analyzer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sets, err := resolveCueSets(o)
	if err != nil {
		return nil, fmt.Errorf("crease: %w", err)
	}
	m := cues.New(sets)
	return &Analyzer{engine: engine.New(parser.New(m)), cues: m}, nil
}

var defaultAnalyzer, _ = New()

// Analyze runs the scenario pipeline on input. It never panics; rejection is
// reported through Result.Error.
func (a *Analyzer) Analyze(input string) Result {
	an, err := a.engine.Process(input)
	if err != nil {
		return failure(err)
	}
	return success(an)
}

// AnalyzeBatch analyses each input independently, preserving order.
func (a *Analyzer) AnalyzeBatch(inputs []string) []Result {
	analyses, errs := a.engine.ProcessBatch(inputs)
	results := make([]Result, len(inputs))
	for i := range inputs {
		if errs[i] != nil {
			results[i] = failure(errs[i])
			continue
		}
		results[i] = success(analyses[i])
	}
	return results
}

// Cues returns the keyword groups this Analyzer uses. The slice is a copy.
func (a *Analyzer) Cues() []CueSet {
	sets := a.cues.Sets()
	out := make([]CueSet, len(sets))
	for i, s := range sets {
		out[i] = CueSet{Name: s.Name, Keywords: s.Keywords}
	}
	return out
}

// Analyze runs input through the default Analyzer.
func Analyze(input string) Result {
	return defaultAnalyzer.Analyze(input)
}

// AnalyzeBatch runs inputs through the default Analyzer.
func AnalyzeBatch(inputs []string) []Result {
	return defaultAnalyzer.AnalyzeBatch(inputs)
}

// CueSet is a named keyword group used to set scenario flags.
type CueSet struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Cues returns the default keyword groups that drive the batting,
// high-pressure, momentum and collapse-risk flags. The returned slice is a
// copy.
func Cues() []CueSet {
	return defaultAnalyzer.Cues()
}

// Bands lists the probability bands from strongest to weakest.
func Bands() []Band {
	bands := classifier.Bands()
	out := make([]Band, len(bands))
	for i, b := range bands {
		out[i] = Band{Name: b.Name, Label: b.Label}
	}
	return out
}

func success(a model.Analysis) Result {
	text, p := a.Text, a.WinProbability
	return Result{Analysis: &text, WinProbability: &p}
}

func failure(err error) Result {
	msg := err.Error()
	if errors.Is(err, engine.ErrInsufficientInput) {
		msg = engine.InsufficientInputMessage
	}
	return Result{Error: &msg}
}
