package yamllist

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hejijunhao/crease/internal/model"
	"github.com/hejijunhao/crease/internal/source"
)

const name = "yaml"

func init() {
	source.Register(name, func() source.Source {
		return &Source{}
	})
}

// Source reads a YAML sequence whose items are either plain strings or
// mappings with a "scenario" key:
//
//	- India needs 20 runs in 6 balls, 2 wickets left
//	- scenario: Australia chasing 280, 220/4 after 40 overs
type Source struct{}

type entry struct {
	Scenario string `yaml:"scenario"`
}

func (s *Source) Read(ctx context.Context, r io.Reader) ([]model.RawScenario, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml source: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("yaml source: line %d: expected a sequence of scenarios", seq.Line)
	}

	out := make([]model.RawScenario, 0, len(seq.Content))
	for _, item := range seq.Content {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := itemText(item)
		if err != nil {
			return nil, fmt.Errorf("yaml source: line %d: %w", item.Line, err)
		}
		out = append(out, model.RawScenario{Text: text, Source: name, Line: item.Line})
	}
	return out, nil
}

func itemText(n *yaml.Node) (string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value, nil
	case yaml.MappingNode:
		var e entry
		if err := n.Decode(&e); err != nil {
			return "", err
		}
		return e.Scenario, nil
	default:
		return "", errors.New("scenario must be a string or a mapping")
	}
}
