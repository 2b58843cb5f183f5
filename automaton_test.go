package powerset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `non deterministic automaton:
[p] :
	a : p -> q
	a : p -> r
	b : p -> r
[q] :
	b : q -> q
	b : q -> s
[s] :
	a : s -> s
	a : s -> r
	b : s -> r
[r] :
	b : r -> p
	a : r -> r
	a : r -> s
deterministic automaton:
[r] :
	b : r -> p
	a : r -> rs
[p] :
	a : p -> qr
	b : p -> r
[rs] :
	a : rs -> rs
	b : rs -> pr
[pr] :
	a : pr -> qrs
	b : pr -> pr
[qr] :
	b : qr -> pqs
	a : qr -> rs
[pqs] :
	a, b : pqs -> qrs
[qrs] :
	b : qrs -> pqrs
	a : qrs -> rs
[pqrs] :
	a : pqrs -> qrs
	b : pqrs -> pqrs
`

// orderedSample declares the sample states as p, q, r, s.
func orderedSample() Definition {
	def := SampleDefinition()
	def.States = []StateDef{{Name: "p"}, {Name: "q"}, {Name: "r"}, {Name: "s", Accepting: true}}
	return def
}

func compile(t *testing.T, def Definition, opts ...Option) *Automaton {
	t.Helper()
	a, err := Compile(def, opts...)
	require.NoError(t, err)
	return a
}

func ids(states []*State) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, s.ID)
	}
	return out
}

func transitionOf(t *testing.T, s *State, target string) *Transition {
	t.Helper()
	for _, tr := range s.Transitions {
		if tr.Target.ID == target {
			return tr
		}
	}
	t.Fatalf("%s has no transition to %q", s, target)
	return nil
}

func TestCompileSample(t *testing.T) {
	a := compile(t, SampleDefinition())

	t.Run("ReachableInInterningOrder", func(t *testing.T) {
		assert.Equal(t, []string{"r", "p", "rs", "pr", "qr", "pqs", "qrs", "pqrs"}, ids(a.Reachable()))
	})

	t.Run("Accepting", func(t *testing.T) {
		var accepting []string
		for _, s := range a.Reachable() {
			if s.Accepting {
				accepting = append(accepting, s.ID)
			}
		}
		assert.ElementsMatch(t, []string{"pqs", "rs", "qrs", "pqrs"}, accepting)
	})

	t.Run("CondensedEdge", func(t *testing.T) {
		pqs, ok := a.Interner().Lookup("pqs")
		require.True(t, ok)
		require.Len(t, pqs.Transitions, 1)
		assert.Equal(t, []string{"a", "b"}, pqs.Transitions[0].Symbols)
		assert.Equal(t, "a, b", pqs.Transitions[0].Label())
		assert.Equal(t, "qrs", pqs.Transitions[0].Target.ID)
	})

	t.Run("SelfLoop", func(t *testing.T) {
		rs, ok := a.Interner().Lookup("rs")
		require.True(t, ok)
		loop := transitionOf(t, rs, "rs")
		assert.Same(t, rs, loop.Source)
		assert.Equal(t, []string{"a"}, loop.Symbols)
	})

	t.Run("Dump", func(t *testing.T) {
		assert.Equal(t, sampleDump, a.String())
	})

	t.Run("Stats", func(t *testing.T) {
		assert.Equal(t, Stats{
			Originals:   4,
			Subsets:     16,
			Interned:    16,
			Reachable:   8,
			Transitions: 16,
			Condensed:   15,
		}, a.Stats())
	})

	t.Run("StartIsComposite", func(t *testing.T) {
		assert.Equal(t, "p", a.Start().ID)
		assert.NotSame(t, a.StartState(), a.Start())
	})
}

func TestCompileDeclarationOrder(t *testing.T) {
	a := compile(t, orderedSample())

	assert.ElementsMatch(t, []string{"p", "qr", "r", "rs", "pqs", "pr", "qrs", "pqrs"}, ids(a.Reachable()))
	// Interning order follows the enumeration over the declared order, not visiting order.
	assert.Equal(t, []string{"rs", "r", "p", "pr", "qrs", "qr", "pqs", "pqrs"}, ids(a.Reachable()))
}

func TestDeterminism(t *testing.T) {
	first := compile(t, SampleDefinition())
	second := compile(t, SampleDefinition())

	assert.Equal(t, ids(first.Interner().States()), ids(second.Interner().States()))
	assert.Equal(t, first.String(), second.String())
}

func TestIdentifierUniqueness(t *testing.T) {
	a := compile(t, orderedSample())

	seen := make(map[string]*State)
	for _, s := range a.Interner().States() {
		if other, ok := seen[s.ID]; ok {
			t.Fatalf("identifier %q shared by %p and %p", s.ID, other, s)
		}
		seen[s.ID] = s
	}
	assert.Len(t, seen, 16)
}

func TestCondensedTransitionsAreUnique(t *testing.T) {
	a := compile(t, SampleDefinition())

	for _, s := range a.Reachable() {
		targets := make(map[string]struct{})
		for _, tr := range s.Transitions {
			_, dup := targets[tr.Target.ID]
			assert.False(t, dup, "%s has two transitions to %s", s, tr.Target)
			targets[tr.Target.ID] = struct{}{}
		}
	}
}

func TestReachabilityClosure(t *testing.T) {
	a := compile(t, orderedSample())

	// Independent depth-first walk from the start state.
	visited := make(map[string]bool)
	var walk func(s *State)
	walk = func(s *State) {
		if visited[s.ID] {
			return
		}
		visited[s.ID] = true
		for _, tr := range s.Transitions {
			walk(tr.Target)
		}
	}
	walk(a.Start())

	assert.Len(t, a.Reachable(), len(visited))
	for _, s := range a.Reachable() {
		assert.True(t, visited[s.ID], "%s is listed but not reachable", s)
	}
	for _, s := range a.Interner().States() {
		assert.Equal(t, visited[s.ID], s.Reachable, "reachable flag of %s", s)
	}
}

func TestCondenseIsIdempotent(t *testing.T) {
	a := compile(t, SampleDefinition())
	once := a.String()
	stats := a.Stats()

	a.Condense()
	assert.Equal(t, once, a.String())
	assert.Equal(t, stats, a.Stats())
}

func TestDeterminizeKeepsUnreachableComposites(t *testing.T) {
	a, err := New(SampleDefinition())
	require.NoError(t, err)
	require.NoError(t, a.Determinize())

	assert.Equal(t, []string{"", "r", "p", "rs", "s", "pr", "q", "qs", "qr", "pqs", "qrs", "pqrs", "ps", "prs", "pq", "pqr"},
		ids(a.Interner().States()))

	empty, ok := a.Interner().Lookup("")
	require.True(t, ok)
	assert.Empty(t, empty.Transitions)
	assert.False(t, empty.Reachable)
	assert.False(t, empty.Accepting)

	// Not condensed yet: pqs still has one transition per symbol.
	pqs, _ := a.Interner().Lookup("pqs")
	assert.Len(t, pqs.Transitions, 2)
}

func TestDeterminizeOnlyOnce(t *testing.T) {
	a, err := New(SampleDefinition())
	require.NoError(t, err)
	require.NoError(t, a.Determinize())
	assert.ErrorIs(t, a.Determinize(), ErrAlreadyDeterminized)
}

func TestNFAIsUntouched(t *testing.T) {
	a := compile(t, SampleDefinition())

	p, ok := a.State("p")
	require.True(t, ok)
	assert.Len(t, p.Transitions, 3)
	assert.False(t, p.Reachable)
	for _, s := range a.States() {
		for _, tr := range s.Transitions {
			assert.Len(t, tr.Symbols, 1)
		}
	}
}

func TestNewErrors(t *testing.T) {
	t.Run("StartNotFound", func(t *testing.T) {
		def := SampleDefinition()
		def.Start = "z"
		_, err := New(def)
		assert.ErrorIs(t, err, ErrStartNotFound)
		assert.Contains(t, err.Error(), `"z"`)
	})

	t.Run("UnknownTarget", func(t *testing.T) {
		def := SampleDefinition()
		def.Transitions = append(def.Transitions, TransitionDef{Symbol: "a", From: "p", To: "t"})
		_, err := New(def)
		assert.ErrorIs(t, err, ErrUnknownState)
		assert.Contains(t, err.Error(), "p -a-> t")
	})

	t.Run("UnknownSource", func(t *testing.T) {
		def := SampleDefinition()
		def.Transitions = append(def.Transitions, TransitionDef{Symbol: "b", From: "u", To: "p"})
		_, err := Compile(def)
		assert.ErrorIs(t, err, ErrUnknownState)
	})

	t.Run("TooComplex", func(t *testing.T) {
		_, err := Compile(SampleDefinition(), WithMaxStates(3))
		assert.ErrorIs(t, err, ErrTooComplex)

		var tooComplex *TooComplexError
		require.ErrorAs(t, err, &tooComplex)
		assert.Equal(t, 4, tooComplex.States)
		assert.Equal(t, 3, tooComplex.Limit)
	})

	t.Run("StartCheckedFirst", func(t *testing.T) {
		def := SampleDefinition()
		def.Start = ""
		_, err := New(def, WithMaxStates(1))
		assert.ErrorIs(t, err, ErrStartNotFound)
	})
}

func TestAcceptingList(t *testing.T) {
	def := SampleDefinition()
	def.States[2].Accepting = false
	def.Accepting = []string{"s"}

	a := compile(t, def)
	assert.Equal(t, sampleDump, a.String())
	s, _ := a.State("s")
	assert.True(t, s.Accepting)
}

type phaseRecorder struct {
	phases []string
	last   Stats
}

func (r *phaseRecorder) ObservePhase(phase string, stats Stats) {
	r.phases = append(r.phases, phase)
	r.last = stats
}

func TestObserver(t *testing.T) {
	rec := &phaseRecorder{}
	a := compile(t, SampleDefinition(), WithObserver(rec))

	assert.Equal(t, []string{PhaseConstruct, PhaseFilter, PhaseCondense}, rec.phases)
	assert.Equal(t, a.Stats(), rec.last)
}

func TestWriteDumpStyled(t *testing.T) {
	a := compile(t, SampleDefinition())

	var plain strings.Builder
	require.NoError(t, a.WriteDumpStyled(&plain, nil))
	assert.Equal(t, sampleDump, plain.String())

	var styled strings.Builder
	require.NoError(t, a.WriteDumpStyled(&styled, func(s *State, header string) string {
		if s.Accepting {
			return "*" + header
		}
		return header
	}))
	out := styled.String()
	for _, id := range []string{"s", "rs", "pqs", "qrs", "pqrs"} {
		assert.Contains(t, out, "*["+id+"] :\n")
	}
	assert.NotContains(t, out, "*[p]")
	assert.Equal(t, sampleDump, strings.ReplaceAll(out, "*[", "["))
}
