package jsonlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hejijunhao/crease/internal/model"
	"github.com/hejijunhao/crease/internal/source"
)

const name = "json"

func init() {
	source.Register(name, func() source.Source {
		return &Source{}
	})
}

// Source reads a JSON array of scenario strings. Line holds the 1-based
// position in the array.
type Source struct{}

func (s *Source) Read(ctx context.Context, r io.Reader) ([]model.RawScenario, error) {
	var texts []string
	if err := json.NewDecoder(r).Decode(&texts); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("json source: %w", err)
	}

	out := make([]model.RawScenario, 0, len(texts))
	for i, t := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, model.RawScenario{Text: t, Source: name, Line: i + 1})
	}
	return out, nil
}
