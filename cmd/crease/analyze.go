package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/crease/internal/engine"
	"github.com/hejijunhao/crease/internal/model"
	"github.com/hejijunhao/crease/internal/output"
)

func newAnalyzeCmd(flags *flagOverrides) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [scenario words...]",
		Short: "Analyze a single match scenario",
		Long: `Analyze one scenario given as arguments, or read from stdin when no
arguments are given. Exits with status 1 when the scenario is too short to
analyze.`,
		Example: `  crease analyze India need 20 runs in 6 balls, 2 wickets left
  echo "Australia chasing 280, 220/4 after 40 overs" | crease analyze --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			raw := model.RawScenario{Text: strings.Join(args, " "), Source: "args", Line: 1}
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				raw = model.RawScenario{Text: strings.TrimRight(string(b), "\r\n"), Source: "stdin", Line: 1}
			}

			out, err := newOutput(cmd.OutOrStdout(), cfg.Output)
			if err != nil {
				return err
			}

			a, perr := engine.Default().Process(raw.Text)
			werr := out.Write(cmd.Context(), output.NewRecord(raw, a, perr))
			if err := errors.Join(werr, out.Close()); err != nil {
				return err
			}

			if errors.Is(perr, engine.ErrInsufficientInput) {
				return errRejected
			}
			return perr
		},
	}
}
