package lines

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hejijunhao/crease/internal/model"
	"github.com/hejijunhao/crease/internal/source"
)

const name = "lines"

// maxLineSize bounds a single scenario line.
const maxLineSize = 1 << 20

func init() {
	source.Register(name, func() source.Source {
		return &Source{}
	})
}

// Source reads one scenario per line. Blank lines and lines starting with
// '#' are skipped.
type Source struct{}

func (s *Source) Read(ctx context.Context, r io.Reader) ([]model.RawScenario, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var out []model.RawScenario
	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		out = append(out, model.RawScenario{Text: text, Source: name, Line: lineNo})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lines source: %w", err)
	}
	return out, nil
}
