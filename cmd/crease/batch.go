package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/crease/internal/engine"
	"github.com/hejijunhao/crease/internal/pipeline"
	"github.com/hejijunhao/crease/internal/source"
)

func newBatchCmd(flags *flagOverrides) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Analyze many scenarios from a file or stdin",
		Long: `Analyze every scenario in a file, or stdin when the file is omitted or "-".
The --source flag picks the input format: one scenario per line, a YAML
list, or a JSON array of strings. Scenarios that are too short produce an
error result and do not stop the batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			ctor, err := source.Get(cfg.Source.Provider)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			out, err := newOutput(cmd.OutOrStdout(), cfg.Output)
			if err != nil {
				return err
			}

			p := pipeline.New(ctor(), engine.Default(), out)
			stats, runErr := p.Run(cmd.Context(), in)
			if err := errors.Join(runErr, p.Close()); err != nil {
				return err
			}

			slog.Info("batch complete",
				"source", cfg.Source.Provider,
				"total", stats.Total,
				"analyzed", stats.Analyzed,
				"rejected", stats.Rejected,
			)
			return nil
		},
	}
}
