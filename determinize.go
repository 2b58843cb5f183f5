package powerset

// Determinize Builds the composite states of every subset of the original states, then
// marks the ones reachable from the start state. Transitions are left uncondensed; call
// Condense afterwards. It may only run once per Automaton.
func (a *Automaton) Determinize() error {
	if a.determinized {
		return ErrAlreadyDeterminized
	}

	a.construct()
	a.logger().Debug("subsets constructed",
		"subsets", a.stats.Subsets,
		"interned", a.stats.Interned,
	)
	a.notify(PhaseConstruct)

	start, ok := a.interner.Lookup(a.start.ID)
	if !ok {
		// Every original state is a singleton subset, so this only happens on a broken interner.
		return ErrStartNotFound
	}
	a.filter(start)
	a.determinized = true
	a.logger().Debug("reachable states filtered",
		"reachable", a.stats.Reachable,
		"transitions", a.stats.Transitions,
	)
	a.notify(PhaseFilter)
	return nil
}

// Compile Runs the whole pipeline on def: build the NFA, construct all subsets, keep the
// reachable ones and condense their transitions. Nothing is returned on error.
func Compile(def Definition, opts ...Option) (*Automaton, error) {
	a, err := New(def, opts...)
	if err != nil {
		return nil, err
	}
	if err := a.Determinize(); err != nil {
		return nil, err
	}
	a.Condense()
	a.logger().Info("automaton determinized",
		"states", a.stats.Originals,
		"interned", a.stats.Interned,
		"reachable", a.stats.Reachable,
		"transitions", a.stats.Condensed,
	)
	return a, nil
}
