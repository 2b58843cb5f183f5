package powerset

// Condense Merges, for every reachable state, all transitions going to the same target into
// the first of them; the merged transition carries the symbols of the others in order.
// Applying it more than once changes nothing, and it does nothing before Determinize.
func (a *Automaton) Condense() {
	if !a.determinized {
		return
	}
	condensed := 0
	for _, s := range a.reachable {
		s.Transitions = condenseTransitions(s.Transitions)
		condensed += len(s.Transitions)
	}
	a.stats.Condensed = condensed
	a.logger().Debug("transitions condensed",
		"before", a.stats.Transitions,
		"after", condensed,
	)
	a.notify(PhaseCondense)
}

func condenseTransitions(transitions []*Transition) []*Transition {
	type pair struct{ source, target string }

	groups := make(map[pair]*Transition, len(transitions))
	kept := transitions[:0]
	for _, t := range transitions {
		key := pair{t.Source.ID, t.Target.ID}
		if first, ok := groups[key]; ok {
			first.Symbols = append(first.Symbols, t.Symbols...)
			continue
		}
		groups[key] = t
		kept = append(kept, t)
	}
	// Drop references held past the new length.
	for i := len(kept); i < len(transitions); i++ {
		transitions[i] = nil
	}
	return kept
}
