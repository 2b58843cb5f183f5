// Package tikz writes a determinized automaton as a TikZ picture.
//
// Nodes are laid out in columns by identifier length, so a composite state made of k
// original states sits in column k. Within a column nodes are stacked top-down in the
// order the automaton lists them.
package tikz

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/geange/powerset"
)

const (
	DefaultHorizontalSpacing = 4
	DefaultVerticalSpacing   = 2
)

type options struct {
	horizontal int
	vertical   int
}

type Option func(*options)

// WithSpacing sets the distance between columns and between stacked nodes.
func WithSpacing(horizontal, vertical int) Option {
	return func(o *options) {
		o.horizontal = horizontal
		o.vertical = vertical
	}
}

// Write emits the reachable states and their transitions of a as a tikzpicture.
// a must have been determinized; it is normally condensed too.
func Write(w io.Writer, a *powerset.Automaton, opts ...Option) error {
	if !a.IsDeterminized() {
		return powerset.ErrNotDeterminized
	}
	o := &options{
		horizontal: DefaultHorizontalSpacing,
		vertical:   DefaultVerticalSpacing,
	}
	for _, fn := range opts {
		fn(o)
	}

	ew := &errWriter{w: w}
	ew.printf("\\begin{tikzpicture}\n")
	ew.printf("\\tikzset{vertex/.style = {shape=circle,draw,minimum size=1.5em}}\n")
	ew.printf("\\tikzset{edge/.style = {->,> = latex'}}\n")

	states := a.Reachable()
	for _, n := range layout(states, o) {
		ew.printf("\\node[vertex] (%s) at (%d,%d) { $ %s $};\n", nodeName(n.state), n.x, n.y, nodeLabel(n.state))
	}
	for _, s := range states {
		for _, t := range s.Transitions {
			ew.printf("\\draw[edge] (%s) to[%s] node[near start, %s] {$%s$} (%s) ;\n",
				nodeName(t.Source), bending(t), labelSide(t), t.Label(), nodeName(t.Target))
		}
	}
	ew.printf("\\end{tikzpicture}\n")

	if ew.err != nil {
		return fmt.Errorf("tikz: %w", ew.err)
	}
	return nil
}

type node struct {
	state *powerset.State
	x, y  int
}

// layout places every state at x = len(id) * horizontal. Columns end on the same top row:
// the first state of a column gets its lowest y and each later state sits one step higher.
func layout(states []*powerset.State, o *options) []node {
	remaining := make(map[int]int)
	tallest := 0
	for _, s := range states {
		l := length(s)
		remaining[l]++
		tallest = max(tallest, remaining[l])
	}

	nodes := make([]node, 0, len(states))
	for _, s := range states {
		l := length(s)
		nodes = append(nodes, node{
			state: s,
			x:     l * o.horizontal,
			y:     (tallest - remaining[l]) * o.vertical,
		})
		remaining[l]--
	}
	return nodes
}

func length(s *powerset.State) int {
	return utf8.RuneCountInString(s.ID)
}

// bending draws self-loops as loops and bends edges that could overlap another one:
// edges inside one column and edges with a reverse counterpart.
func bending(t *powerset.Transition) string {
	switch {
	case t.Source == t.Target:
		return "loop above"
	case length(t.Source) == length(t.Target) || bothWays(t):
		return "bend right"
	default:
		return ""
	}
}

func labelSide(t *powerset.Transition) string {
	if length(t.Source) == length(t.Target) {
		return "left"
	}
	return "above"
}

func bothWays(t *powerset.Transition) bool {
	for _, back := range t.Target.Transitions {
		if back.Target.ID == t.Source.ID {
			return true
		}
	}
	return false
}

func nodeName(s *powerset.State) string {
	if s.ID == "" {
		return "empty"
	}
	return s.ID
}

func nodeLabel(s *powerset.State) string {
	if s.ID == "" {
		return "\\emptyset"
	}
	return s.ID
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
