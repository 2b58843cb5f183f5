package powerset

import "github.com/bits-and-blooms/bitset"

// Run Returns true if the determinized automaton accepts word, one symbol per element.
// It returns false before Determinize.
func Run(a *Automaton, word []string) bool {
	state := a.Start()
	if state == nil {
		return false
	}
	for _, symbol := range word {
		state = a.Step(state, symbol)
		if state == nil {
			return false
		}
	}
	return state.Accepting
}

// Step Performs lookup in the transitions of state, assuming determinism.
// Returns: destination state, nil if no outgoing transition carries symbol
func (a *Automaton) Step(state *State, symbol string) *State {
	for _, t := range state.Transitions {
		if t.HasSymbol(symbol) {
			return t.Target
		}
	}
	return nil
}

// AcceptsNFA Simulates the original NFA on word, following every matching transition.
func (a *Automaton) AcceptsNFA(word []string) bool {
	current := bitset.New(uint(len(a.states)))
	next := bitset.New(uint(len(a.states)))
	current.Set(uint(a.start.Index))

	for _, symbol := range word {
		for i, ok := current.NextSet(0); ok; i, ok = current.NextSet(i + 1) {
			for _, t := range a.states[i].Transitions {
				if t.HasSymbol(symbol) {
					next.Set(uint(t.Target.Index))
				}
			}
		}
		if next.None() {
			return false
		}
		// swap "current" with "next", clear "next"
		current, next = next, current
		next.ClearAll()
	}

	for i, ok := current.NextSet(0); ok; i, ok = current.NextSet(i + 1) {
		if a.states[i].Accepting {
			return true
		}
	}
	return false
}
