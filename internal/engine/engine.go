package engine

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/hejijunhao/crease/internal/engine/classifier"
	"github.com/hejijunhao/crease/internal/engine/cues"
	"github.com/hejijunhao/crease/internal/engine/estimator"
	"github.com/hejijunhao/crease/internal/engine/narrative"
	"github.com/hejijunhao/crease/internal/engine/parser"
	"github.com/hejijunhao/crease/internal/model"
)

// MinInputLength is the shortest trimmed scenario the engine accepts.
const MinInputLength = 5

// InsufficientInputMessage is the user-facing text for ErrInsufficientInput.
const InsufficientInputMessage = "Please enter a match scenario with enough detail to analyze."

// ErrInsufficientInput is returned for scenarios shorter than MinInputLength.
var ErrInsufficientInput = errors.New("insufficient input")

// Engine orchestrates the parse → estimate → narrate pipeline.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	parser *parser.Parser
}

// New creates an Engine with the provided parser.
func New(p *parser.Parser) *Engine {
	return &Engine{parser: p}
}

// Default creates an Engine using the built-in cue sets.
func Default() *Engine {
	return New(parser.New(cues.Default()))
}

// Process analyses a single scenario.
func (e *Engine) Process(text string) (model.Analysis, error) {
	if inputLength(strings.TrimFunc(text, isTrimSpace)) < MinInputLength {
		return model.Analysis{}, ErrInsufficientInput
	}

	s := e.parser.Parse(text)
	p := estimator.Estimate(s)

	return model.Analysis{
		Scenario:       s,
		WinProbability: p,
		Band:           classifier.Classify(p),
		Text:           narrative.Generate(s, p),
	}, nil
}

// ProcessBatch analyses each text independently. Rejections do not stop the
// batch; errs[i] is non-nil exactly when texts[i] was rejected.
func (e *Engine) ProcessBatch(texts []string) (analyses []model.Analysis, errs []error) {
	if len(texts) == 0 {
		return nil, nil
	}
	analyses = make([]model.Analysis, len(texts))
	errs = make([]error, len(texts))
	for i, t := range texts {
		analyses[i], errs[i] = e.Process(t)
	}
	return analyses, errs
}

// isTrimSpace matches the ECMAScript whitespace and line terminator set:
// Unicode White_Space without NEL (U+0085), plus the BOM (U+FEFF).
func isTrimSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\ufeff'
}

// inputLength counts UTF-16 code units.
func inputLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
