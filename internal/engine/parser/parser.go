package parser

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hejijunhao/crease/internal/engine/cues"
	"github.com/hejijunhao/crease/internal/model"
)

// maxFallbackRuns is the exclusive bound under which the first number in the
// text is read as runs when no "<n> run" phrase exists.
const maxFallbackRuns = 500

// Parser extracts numbers and cue flags from scenario text.
type Parser struct {
	cues *cues.Matcher
}

// New creates a Parser that evaluates flags with the given matcher.
func New(m *cues.Matcher) *Parser {
	return &Parser{cues: m}
}

// Parse reads a scenario. It performs no validation and never fails:
// text without numbers or cues yields absent fields and false flags.
func (p *Parser) Parse(input string) model.Scenario {
	text := normalize(input)
	numbers := extractNumbers(text)

	flags := p.cues.Match(text)

	return model.Scenario{
		Runs:           findRuns(text, numbers),
		Balls:          findSuffixed(text, numbers, " ball", " delivery"),
		Wickets:        findSuffixed(text, numbers, " wicket", " wkt"),
		Overs:          findSuffixed(text, numbers, " over"),
		IsBatting:      flags.Batting,
		IsHighPressure: flags.HighPressure,
		HasMomentum:    flags.Momentum,
		IsCollapseRisk: flags.CollapseRisk,
		NormalizedText: text,
	}
}

// normalize lower-cases the text. No Unicode normalisation is applied, so
// decomposed and composed spellings keep their own lengths.
// A Caser is stateful, so one is built per call.
func normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}

// extractNumbers returns every maximal run of ASCII digits as an integer, in
// order of appearance. Runs too large for int saturate at math.MaxInt.
func extractNumbers(text string) []int {
	var nums []int
	start := -1
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] >= '0' && text[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			nums = append(nums, atoiSaturating(text[start:i]))
			start = -1
		}
	}
	return nums
}

func atoiSaturating(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}

// findRuns picks the first number that is either followed by "run" or is the
// leading number of the text and below maxFallbackRuns.
func findRuns(text string, numbers []int) *int {
	for i, n := range numbers {
		if strings.Contains(text, strconv.Itoa(n)+" run") || (i == 0 && n < maxFallbackRuns) {
			return &n
		}
	}
	return nil
}

// findSuffixed picks the first number whose decimal form is followed by any of
// the suffixes somewhere in text.
func findSuffixed(text string, numbers []int, suffixes ...string) *int {
	for _, n := range numbers {
		s := strconv.Itoa(n)
		for _, suffix := range suffixes {
			if strings.Contains(text, s+suffix) {
				return &n
			}
		}
	}
	return nil
}
