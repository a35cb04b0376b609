package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/crease/internal/config"
	"github.com/hejijunhao/crease/internal/logging"
	"github.com/hejijunhao/crease/internal/output"
	"github.com/hejijunhao/crease/internal/output/file"
	"github.com/hejijunhao/crease/internal/output/multi"
	"github.com/hejijunhao/crease/internal/output/stdout"
	"github.com/hejijunhao/crease/internal/output/text"
	"github.com/hejijunhao/crease/internal/source"

	// Register source implementations.
	_ "github.com/hejijunhao/crease/internal/source/jsonlist"
	_ "github.com/hejijunhao/crease/internal/source/lines"
	_ "github.com/hejijunhao/crease/internal/source/yamllist"
)

// errRejected marks a run whose only failure was an unanalysable scenario.
// The result has already been written, so main exits 1 without printing.
var errRejected = errors.New("scenario rejected")

// flagOverrides holds the persistent flags; a flag only replaces the env
// value when it was set on the command line.
type flagOverrides struct {
	format    string
	source    string
	verbosity string
	logLevel  string
	outFile   string
	pretty    bool
}

func newRootCmd() *cobra.Command {
	var flags flagOverrides

	root := &cobra.Command{
		Use:   "crease",
		Short: "Turn a cricket match scenario into a win probability and commentary",
		Long: `crease reads a free-text cricket match scenario such as
"India need 20 runs in 6 balls, 2 wickets left", estimates the chance of a
win with a fixed set of cricket heuristics and writes a short analyst-style
commentary.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.format, "format", "", "Output format: "+strings.Join(config.Formats, ", ")+" (or set CREASE_FORMAT)")
	pf.StringVar(&flags.source, "source", "", "Batch input format: "+strings.Join(source.Providers(), ", ")+" (or set CREASE_SOURCE)")
	pf.StringVar(&flags.verbosity, "verbosity", "", "Output verbosity: "+strings.Join(config.Verbosities, ", ")+" (or set CREASE_VERBOSITY)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (or set CREASE_LOG_LEVEL)")
	pf.StringVar(&flags.outFile, "out-file", "", "Also append full results as NDJSON to this file (or set CREASE_OUTPUT_FILE)")
	pf.BoolVar(&flags.pretty, "pretty", false, "Indent JSON output (or set CREASE_PRETTY)")

	root.AddCommand(newAnalyzeCmd(&flags))
	root.AddCommand(newBatchCmd(&flags))
	root.AddCommand(newCuesCmd())
	return root
}

// loadConfig reads the environment, applies explicitly set flags and
// installs the default logger on the command's stderr.
func loadConfig(cmd *cobra.Command, flags *flagOverrides) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	pf := cmd.Flags()
	if pf.Changed("format") {
		cfg.Output.Format = flags.format
	}
	if pf.Changed("source") {
		cfg.Source.Provider = flags.source
	}
	if pf.Changed("verbosity") {
		cfg.Output.Verbosity = flags.verbosity
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if pf.Changed("out-file") {
		cfg.Output.File = flags.outFile
	}
	if pf.Changed("pretty") {
		cfg.Output.Pretty = flags.pretty
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	logging.Init(cmd.ErrOrStderr(), cfg.Output.Format != "text", logging.ParseLevel(cfg.LogLevel))
	slog.Debug("configuration loaded",
		"format", cfg.Output.Format,
		"source", cfg.Source.Provider,
		"verbosity", cfg.Output.Verbosity,
	)
	return cfg, nil
}

// newOutput builds the writer selected by cfg, teeing into the results
// archive when one is configured.
func newOutput(w io.Writer, cfg config.OutputConfig) (output.Output, error) {
	verbosity, err := output.ParseVerbosity(cfg.Verbosity)
	if err != nil {
		return nil, err
	}

	var primary output.Output
	switch cfg.Format {
	case "json":
		primary = stdout.New(w, stdout.JSON, verbosity, cfg.Pretty)
	case "yaml":
		primary = stdout.New(w, stdout.YAML, verbosity, cfg.Pretty)
	case "text":
		primary = text.New(w, verbosity)
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}

	if cfg.File == "" {
		return primary, nil
	}
	archive, err := file.New(cfg.File)
	if err != nil {
		return nil, err
	}
	slog.Debug("archiving results", "path", cfg.File)
	return multi.New(primary, archive), nil
}
