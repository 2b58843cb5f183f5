package powerset

// filter Marks every composite state reachable from start and collects the marked ones
// in interning order (not visiting order).
func (a *Automaton) filter(start *State) {
	workList := make([]*State, 0, a.interner.Len())
	workList = append(workList, start)

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]

		// Targets may be queued more than once; only the first dequeue counts.
		if s.Reachable {
			continue
		}
		s.Reachable = true
		for _, t := range s.Transitions {
			workList = append(workList, t.Target)
		}
	}

	a.reachable = a.reachable[:0]
	transitions := 0
	for _, s := range a.interner.States() {
		if s.Reachable {
			a.reachable = append(a.reachable, s)
			transitions += len(s.Transitions)
		}
	}
	a.stats.Reachable = len(a.reachable)
	a.stats.Transitions = transitions
	a.stats.Condensed = transitions
}
