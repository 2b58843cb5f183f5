package powerset

// construct Runs the subset construction over every subset of the original states, not
// only the ones reachable from the start state, so the interner ends up holding composite
// states that the reachability filter will later drop.
// Worst case complexity: exponential in number of states.
func (a *Automaton) construct() {
	n := len(a.states)
	a.interner = NewInterner(a.opts.acceptance(a.accepting))

	total := uint64(1) << uint(n)
	for mask := uint64(0); mask < total; mask++ {
		set := subsetOfMask(mask, n)
		members := set.names(a.states)
		// Subsets that collapse to one identifier all add their transitions to the same state.
		composite := a.interner.Intern(compositeID(members), members)

		symbols, targets := a.move(set)
		for _, symbol := range symbols {
			next := targets[symbol].names(a.states)
			successor := a.interner.Intern(compositeID(next), next)
			composite.Transitions = append(composite.Transitions, &Transition{
				Symbols: []string{symbol},
				Source:  composite,
				Target:  successor,
			})
		}
	}

	a.stats.Subsets = int(total)
	a.stats.Interned = a.interner.Len()
}

// move Collects, per symbol, the union of targets reachable in one step from any member
// of set. Symbols are returned in first-seen order, scanning members in declaration
// order and each member's transitions in order.
func (a *Automaton) move(set subset) ([]string, map[string]subset) {
	var symbols []string
	targets := make(map[string]subset)
	set.each(func(i int) {
		for _, t := range a.states[i].Transitions {
			symbol := t.Symbols[0]
			to, ok := targets[symbol]
			if !ok {
				to = newSubset(len(a.states))
				targets[symbol] = to
				symbols = append(symbols, symbol)
			}
			to.add(t.Target.Index)
		}
	})
	return symbols, targets
}
