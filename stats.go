package powerset

// Phase names passed to Observer.ObservePhase.
const (
	PhaseConstruct = "construct"
	PhaseFilter    = "filter"
	PhaseCondense  = "condense"
)

// Stats Counters describing one determinization run.
type Stats struct {
	Originals   int // original NFA states
	Subsets     int // subsets enumerated by the constructor (2^Originals)
	Interned    int // composite states created by the interner
	Reachable   int // composite states reachable from the start state
	Transitions int // transitions of reachable states before condensing
	Condensed   int // transitions of reachable states after condensing
}

// Observer Receives the run's counters after each completed phase.
type Observer interface {
	ObservePhase(phase string, stats Stats)
}

func (a *Automaton) notify(phase string) {
	if a.opts.observer != nil {
		a.opts.observer.ObservePhase(phase, a.stats)
	}
}
