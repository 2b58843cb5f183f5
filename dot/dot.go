// Package dot writes a determinized automaton in Graphviz DOT syntax.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/geange/powerset"
)

// Write prints the reachable states of a and their transitions as a digraph.
func Write(w io.Writer, a *powerset.Automaton) error {
	if !a.IsDeterminized() {
		return powerset.ErrNotDeterminized
	}

	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	sb.WriteString("    rankdir=LR;\n")
	for _, s := range a.Reachable() {
		shape := "circle"
		if s.Accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "    %s [shape=%s];\n", quote(s.ID), shape)
	}
	for _, s := range a.Reachable() {
		for _, t := range s.Transitions {
			fmt.Fprintf(&sb, "    %s -> %s [label=%s];\n", quote(t.Source.ID), quote(t.Target.ID), quote(t.Label()))
		}
	}
	fmt.Fprintf(&sb, "    _start [shape=point]; _start -> %s;\n", quote(a.Start().ID))
	sb.WriteString("}\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
