package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hejijunhao/crease/internal/output"
)

// Format selects the serialisation.
type Format int

const (
	JSON Format = iota // one JSON object per line (NDJSON), or indented
	YAML               // one YAML document per record
)

// Output writes serialised records to a stream, usually os.Stdout.
type Output struct {
	format    Format
	verbosity output.Verbosity
	json      *json.Encoder
	yaml      *yaml.Encoder
}

// New creates an Output with verbosity-aware field omission. pretty indents
// JSON; YAML is always block style.
func New(w io.Writer, format Format, verbosity output.Verbosity, pretty bool) *Output {
	o := &Output{format: format, verbosity: verbosity}
	switch format {
	case YAML:
		o.yaml = yaml.NewEncoder(w)
		o.yaml.SetIndent(2)
	default:
		o.json = json.NewEncoder(w)
		o.json.SetEscapeHTML(false)
		if pretty {
			o.json.SetIndent("", "  ")
		}
	}
	return o
}

func (o *Output) Write(_ context.Context, rec output.Record) error {
	formatted := output.FormatRecord(rec, o.verbosity)
	var err error
	if o.format == YAML {
		err = o.yaml.Encode(formatted)
	} else {
		err = o.json.Encode(formatted)
	}
	if err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

// Close flushes any buffered YAML.
func (o *Output) Close() error {
	if o.yaml != nil {
		if err := o.yaml.Close(); err != nil {
			return fmt.Errorf("stdout output: %w", err)
		}
	}
	return nil
}
