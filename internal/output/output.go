package output

import "context"

// Output defines the interface for analysis result destinations.
type Output interface {
	Write(ctx context.Context, rec Record) error
	Close() error
}
