package main

import (
	"fmt"
	"io"
	"os"

	"github.com/geange/powerset"
	"github.com/geange/powerset/dot"
	"github.com/geange/powerset/tikz"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the determinized automaton as a diagram",
		Long:  `Determinizes the automaton and writes the reachable states as a TikZ picture or a Graphviz digraph.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			a, err := s.compile(args)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")
			hspace, _ := cmd.Flags().GetInt("hspace")
			vspace, _ := cmd.Flags().GetInt("vspace")

			write, err := writerFor(format, hspace, vspace)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error { return write(w, a) }); err != nil {
				s.logger.Error("failed to export", "out", out, "error", err)
				return err
			}
			s.logger.Info("diagram written", "format", format, "out", out, "states", len(a.Reachable()))
			return s.flushMetrics(cmd.ErrOrStderr())
		},
	}

	cmd.Flags().String("format", "tikz", "Output format (tikz|dot)")
	cmd.Flags().StringP("out", "o", "automat.tex", "Output file, - for stdout")
	cmd.Flags().Int("hspace", tikz.DefaultHorizontalSpacing, "TikZ distance between columns")
	cmd.Flags().Int("vspace", tikz.DefaultVerticalSpacing, "TikZ distance between stacked nodes")
	return cmd
}

func writerFor(format string, hspace, vspace int) (func(io.Writer, *powerset.Automaton) error, error) {
	switch format {
	case "tikz":
		return func(w io.Writer, a *powerset.Automaton) error {
			return tikz.Write(w, a, tikz.WithSpacing(hspace, vspace))
		}, nil
	case "dot":
		return dot.Write, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
