package tikz

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/geange/powerset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePicture = `\begin{tikzpicture}
\tikzset{vertex/.style = {shape=circle,draw,minimum size=1.5em}}
\tikzset{edge/.style = {->,> = latex'}}
\node[vertex] (r) at (4,2) { $ r $};
\node[vertex] (p) at (4,4) { $ p $};
\node[vertex] (rs) at (8,0) { $ rs $};
\node[vertex] (pr) at (8,2) { $ pr $};
\node[vertex] (qr) at (8,4) { $ qr $};
\node[vertex] (pqs) at (12,2) { $ pqs $};
\node[vertex] (qrs) at (12,4) { $ qrs $};
\node[vertex] (pqrs) at (16,4) { $ pqrs $};
\draw[edge] (r) to[bend right] node[near start, left] {$b$} (p) ;
\draw[edge] (r) to[] node[near start, above] {$a$} (rs) ;
\draw[edge] (p) to[] node[near start, above] {$a$} (qr) ;
\draw[edge] (p) to[bend right] node[near start, left] {$b$} (r) ;
\draw[edge] (rs) to[loop above] node[near start, left] {$a$} (rs) ;
\draw[edge] (rs) to[bend right] node[near start, left] {$b$} (pr) ;
\draw[edge] (pr) to[] node[near start, above] {$a$} (qrs) ;
\draw[edge] (pr) to[loop above] node[near start, left] {$b$} (pr) ;
\draw[edge] (qr) to[] node[near start, above] {$b$} (pqs) ;
\draw[edge] (qr) to[bend right] node[near start, left] {$a$} (rs) ;
\draw[edge] (pqs) to[bend right] node[near start, left] {$a, b$} (qrs) ;
\draw[edge] (qrs) to[bend right] node[near start, above] {$b$} (pqrs) ;
\draw[edge] (qrs) to[] node[near start, above] {$a$} (rs) ;
\draw[edge] (pqrs) to[bend right] node[near start, above] {$a$} (qrs) ;
\draw[edge] (pqrs) to[loop above] node[near start, left] {$b$} (pqrs) ;
\end{tikzpicture}
`

func compileSample(t *testing.T) *powerset.Automaton {
	t.Helper()
	a, err := powerset.Compile(powerset.SampleDefinition())
	require.NoError(t, err)
	return a
}

func TestWriteSample(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, compileSample(t)))
	assert.Equal(t, samplePicture, buf.String())
}

func TestWriteSpacing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, compileSample(t), WithSpacing(3, 1)))

	out := buf.String()
	assert.Contains(t, out, `\node[vertex] (r) at (3,1) { $ r $};`)
	assert.Contains(t, out, `\node[vertex] (pqrs) at (12,2) { $ pqrs $};`)
}

func TestWriteNotDeterminized(t *testing.T) {
	a, err := powerset.New(powerset.SampleDefinition())
	require.NoError(t, err)

	err = Write(&bytes.Buffer{}, a)
	assert.ErrorIs(t, err, powerset.ErrNotDeterminized)
}

type failingWriter struct {
	after int
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errDiskFull
	}
	w.after--
	return len(p), nil
}

func TestWriteSurfacesWriterError(t *testing.T) {
	err := Write(&failingWriter{after: 5}, compileSample(t))
	assert.ErrorIs(t, err, errDiskFull)
}

func TestBendingRules(t *testing.T) {
	// x -a-> xy and xy -b-> x point at each other across columns, so both bend.
	def := powerset.Definition{
		States: []powerset.StateDef{{Name: "x"}, {Name: "y", Accepting: true}},
		Start:  "x",
		Transitions: []powerset.TransitionDef{
			{Symbol: "a", From: "x", To: "x"},
			{Symbol: "a", From: "x", To: "y"},
			{Symbol: "b", From: "y", To: "x"},
		},
	}
	a, err := powerset.Compile(def)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	assert.Contains(t, lines, `\draw[edge] (x) to[bend right] node[near start, above] {$a$} (xy) ;`)
	assert.Contains(t, lines, `\draw[edge] (xy) to[loop above] node[near start, left] {$a$} (xy) ;`)
	assert.Contains(t, lines, `\draw[edge] (xy) to[bend right] node[near start, above] {$b$} (x) ;`)
}

func TestLayoutColumns(t *testing.T) {
	nodes := layout(compileSample(t).Reachable(), &options{horizontal: 1, vertical: 1})

	got := make(map[string][2]int, len(nodes))
	for _, n := range nodes {
		got[n.state.ID] = [2]int{n.x, n.y}
	}
	// Within a column the first state is lowest; every column tops out on row 2.
	assert.Equal(t, map[string][2]int{
		"r": {1, 1}, "p": {1, 2},
		"rs": {2, 0}, "pr": {2, 1}, "qr": {2, 2},
		"pqs": {3, 1}, "qrs": {3, 2},
		"pqrs": {4, 2},
	}, got)
}
