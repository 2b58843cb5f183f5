package main

import (
	"github.com/geange/powerset"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the NFA and the determinized automaton",
		Long:  `Lists every state followed by its outgoing transitions, first for the NFA and then for the reachable DFA. Accepting states are highlighted on terminals.`,
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

			out := termenv.NewOutput(cmd.OutOrStdout())
			if err := a.WriteDumpStyled(out, acceptingHeader(out)); err != nil {
				return err
			}
			return s.flushMetrics(cmd.ErrOrStderr())
		},
	}
}

// acceptingHeader highlights accepting states; plain terminals get the header unchanged.
func acceptingHeader(out *termenv.Output) powerset.HeaderStyle {
	return func(s *powerset.State, header string) string {
		if !s.Accepting {
			return header
		}
		return out.String(header).Bold().Foreground(out.Color("#f472b6")).String()
	}
}
