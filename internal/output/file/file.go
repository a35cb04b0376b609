package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/hejijunhao/crease/internal/output"
)

const defaultBufSize = 64 * 1024

// Option configures a file Output.
type Option func(*Output)

// WithTruncate starts the archive empty instead of appending to it.
func WithTruncate() Option {
	return func(o *Output) { o.flag = os.O_CREATE | os.O_WRONLY | os.O_TRUNC }
}

// WithVerbosity overrides the archive verbosity. Default: Full.
func WithVerbosity(v output.Verbosity) Option {
	return func(o *Output) { o.verbosity = v }
}

// Output appends records as NDJSON to a results archive on disk.
type Output struct {
	mu        sync.Mutex
	f         *os.File
	w         *bufio.Writer
	enc       *json.Encoder
	path      string
	flag      int
	verbosity output.Verbosity
}

// New opens (or creates) the archive at path.
func New(path string, opts ...Option) (*Output, error) {
	o := &Output{
		path:      path,
		flag:      os.O_CREATE | os.O_WRONLY | os.O_APPEND,
		verbosity: output.Full,
	}
	for _, opt := range opts {
		opt(o)
	}

	f, err := os.OpenFile(path, o.flag, 0o644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", path, err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, defaultBufSize)
	o.enc = json.NewEncoder(o.w)
	o.enc.SetEscapeHTML(false)
	return o, nil
}

func (o *Output) Write(_ context.Context, rec output.Record) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.enc.Encode(output.FormatRecord(rec, o.verbosity)); err != nil {
		return fmt.Errorf("file output: write %s: %w", o.path, err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush %s: %w", o.path, err)
	}
	return o.f.Close()
}
