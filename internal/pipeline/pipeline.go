package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hejijunhao/crease/internal/model"
	"github.com/hejijunhao/crease/internal/output"
	"github.com/hejijunhao/crease/internal/source"
)

// Processor analyses a single scenario. *engine.Engine satisfies it.
type Processor interface {
	Process(text string) (model.Analysis, error)
}

// Stats summarises one run.
type Stats struct {
	Total    int
	Analyzed int
	Rejected int
}

// Pipeline connects a source, processor, and output.
type Pipeline struct {
	source source.Source
	engine Processor
	output output.Output
}

// New creates a Pipeline from the given components.
func New(src source.Source, eng Processor, out output.Output) *Pipeline {
	return &Pipeline{
		source: src,
		engine: eng,
		output: out,
	}
}

// Run reads every scenario from r and writes one record per scenario, in
// input order. Rejected scenarios are written as error records and do not
// stop the run; source, output and context errors do.
func (p *Pipeline) Run(ctx context.Context, r io.Reader) (Stats, error) {
	var stats Stats

	raws, err := p.source.Read(ctx, r)
	if err != nil {
		return stats, fmt.Errorf("pipeline read: %w", err)
	}

	for _, raw := range raws {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Total++

		a, perr := p.engine.Process(raw.Text)
		if perr != nil {
			stats.Rejected++
			slog.Warn("scenario rejected", "source", raw.Source, "line", raw.Line, "error", perr)
		} else {
			stats.Analyzed++
			slog.Debug("scenario analyzed", "line", raw.Line, "win_probability", a.WinProbability, "band", a.Band.Name)
		}

		if err := p.output.Write(ctx, output.NewRecord(raw, a, perr)); err != nil {
			return stats, fmt.Errorf("pipeline output: %w", err)
		}
	}
	return stats, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
