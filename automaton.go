package powerset

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// State A state of the original NFA or a composite state of the determinized automaton.
// Composite identifiers are the sorted concatenation of their members' names.
type State struct {
	ID        string
	Accepting bool

	// Reachable is set once by the reachability filter.
	Reachable bool

	// Members holds the sorted names of the original states this state stands for.
	Members []string

	// Index is the position of the state in its owning table (original states or interner).
	Index int

	Transitions []*Transition
}

func (s *State) String() string {
	return "[" + s.ID + "]"
}

// Transition A labeled edge owned by its source state. Before condensing it carries
// exactly one symbol.
type Transition struct {
	Symbols []string
	Source  *State
	Target  *State
}

// Label Returns the symbols joined with ", ".
func (t *Transition) Label() string {
	return strings.Join(t.Symbols, ", ")
}

func (t *Transition) String() string {
	return fmt.Sprintf("%s : %s -> %s", t.Label(), t.Source.ID, t.Target.ID)
}

// HasSymbol Returns true if the transition is labeled with symbol.
func (t *Transition) HasSymbol(symbol string) bool {
	for _, s := range t.Symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

// Automaton Holds an NFA and, once determinized, the composite states derived from it.
// The original states never change after New. The interner and the reachable list are
// written by Determinize; Condense only rewrites the transitions of reachable states.
type Automaton struct {
	states    []*State
	byName    map[string]*State
	start     *State
	accepting []string

	interner     *Interner
	reachable    []*State
	determinized bool

	opts  *options
	stats Stats
}

// New Builds the original states and transitions of def.
func New(def Definition, opts ...Option) (*Automaton, error) {
	o := newOptions(opts...)

	byName := make(map[string]*State, len(def.States))
	for _, sd := range def.States {
		if _, ok := byName[sd.Name]; !ok {
			byName[sd.Name] = nil
		}
	}
	if _, ok := byName[def.Start]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, def.Start)
	}
	if len(def.States) > o.maxStates {
		return nil, &TooComplexError{States: len(def.States), Limit: o.maxStates}
	}

	a := &Automaton{
		states:    make([]*State, 0, len(def.States)),
		byName:    byName,
		accepting: def.acceptingNames(),
		opts:      o,
	}

	acceptingSet := make(map[string]struct{}, len(a.accepting))
	for _, name := range a.accepting {
		acceptingSet[name] = struct{}{}
	}
	for _, sd := range def.States {
		_, acc := acceptingSet[sd.Name]
		s := &State{
			ID:        sd.Name,
			Accepting: acc,
			Members:   []string{sd.Name},
			Index:     len(a.states),
		}
		a.states = append(a.states, s)
		if byName[sd.Name] == nil {
			byName[sd.Name] = s
		}
	}

	for _, td := range def.Transitions {
		source, target := byName[td.From], byName[td.To]
		if source == nil {
			return nil, fmt.Errorf("%w: %q in transition %s -%s-> %s", ErrUnknownState, td.From, td.From, td.Symbol, td.To)
		}
		if target == nil {
			return nil, fmt.Errorf("%w: %q in transition %s -%s-> %s", ErrUnknownState, td.To, td.From, td.Symbol, td.To)
		}
		source.Transitions = append(source.Transitions, &Transition{
			Symbols: []string{td.Symbol},
			Source:  source,
			Target:  target,
		})
	}

	a.start = byName[def.Start]
	a.stats.Originals = len(a.states)
	a.logger().Debug("nfa built",
		"states", len(a.states),
		"transitions", len(def.Transitions),
		"start", def.Start,
	)
	return a, nil
}

// States Returns the original states in declaration order.
func (a *Automaton) States() []*State {
	return a.states
}

// State Returns the original state with the given name.
func (a *Automaton) State(name string) (*State, bool) {
	s, ok := a.byName[name]
	return s, ok && s != nil
}

// StartState Returns the original start state.
func (a *Automaton) StartState() *State {
	return a.start
}

// Start Returns the composite start state, or nil before Determinize.
func (a *Automaton) Start() *State {
	if a.interner == nil {
		return nil
	}
	s, _ := a.interner.Lookup(a.start.ID)
	return s
}

// Interner Returns the registry of composite states, or nil before Determinize.
func (a *Automaton) Interner() *Interner {
	return a.interner
}

// Reachable Returns the composite states reachable from the start state, in interning order.
func (a *Automaton) Reachable() []*State {
	return a.reachable
}

// IsDeterminized Returns true once Determinize has completed.
func (a *Automaton) IsDeterminized() bool {
	return a.determinized
}

// Stats Returns counters collected so far.
func (a *Automaton) Stats() Stats {
	return a.stats
}

func (a *Automaton) logger() *slog.Logger {
	return a.opts.logger
}

// WriteDump Writes the original NFA and the reachable DFA, one state per line followed
// by its outgoing transitions.
func (a *Automaton) WriteDump(w io.Writer) error {
	return a.WriteDumpStyled(w, nil)
}

// HeaderStyle Renders the header line of a state in a dump; header is the plain "[id]".
type HeaderStyle func(s *State, header string) string

// WriteDumpStyled Is WriteDump with every state header passed through style. A nil style
// writes headers unchanged.
func (a *Automaton) WriteDumpStyled(w io.Writer, style HeaderStyle) error {
	var sb strings.Builder
	sb.WriteString("non deterministic automaton:\n")
	writeStates(&sb, a.states, style)
	sb.WriteString("deterministic automaton:\n")
	writeStates(&sb, a.reachable, style)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeStates(sb *strings.Builder, states []*State, style HeaderStyle) {
	for _, s := range states {
		header := s.String()
		if style != nil {
			header = style(s, header)
		}
		fmt.Fprintf(sb, "%s :\n", header)
		for _, t := range s.Transitions {
			fmt.Fprintf(sb, "\t%s\n", t)
		}
	}
}

func (a *Automaton) String() string {
	var sb strings.Builder
	_ = a.WriteDump(&sb)
	return sb.String()
}
