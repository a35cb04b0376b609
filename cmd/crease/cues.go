package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/crease/pkg/crease"
)

func newCuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cues",
		Short: "List the keyword cues and probability bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, "Cue sets:")
			for _, c := range crease.Cues() {
				fmt.Fprintf(w, "  %-14s %s\n", c.Name, strings.Join(c.Keywords, ", "))
			}

			fmt.Fprintln(w, "\nBands, strongest first:")
			for _, b := range crease.Bands() {
				fmt.Fprintf(w, "  %-17s %s\n", b.Name, b.Label)
			}
			return nil
		},
	}
}
