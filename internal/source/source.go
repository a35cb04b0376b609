package source

import (
	"context"
	"io"

	"github.com/hejijunhao/crease/internal/model"
)

// Source defines the interface all scenario sources must implement.
type Source interface {
	// Read parses every scenario from r, in input order.
	Read(ctx context.Context, r io.Reader) ([]model.RawScenario, error)
}
