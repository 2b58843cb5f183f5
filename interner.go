package powerset

import "iter"

// Interner Maps composite identifiers to their single State instance for one run.
// States are kept in insertion order; a state's Index is its position in that order.
type Interner struct {
	index  map[string]int
	states []*State
	accept AcceptFunc
}

// NewInterner Creates an empty interner deciding acceptance with accept.
func NewInterner(accept AcceptFunc) *Interner {
	return &Interner{
		index:  make(map[string]int),
		accept: accept,
	}
}

// Intern Returns the state registered under id, creating it on first use. members must be
// the sorted names id was built from; it is ignored, like acceptance, when id already exists.
func (in *Interner) Intern(id string, members []string) *State {
	if i, ok := in.index[id]; ok {
		return in.states[i]
	}
	s := &State{
		ID:        id,
		Accepting: in.accept(id, members),
		Members:   members,
		Index:     len(in.states),
	}
	in.index[id] = s.Index
	in.states = append(in.states, s)
	return s
}

// Lookup Returns the state registered under id.
func (in *Interner) Lookup(id string) (*State, bool) {
	i, ok := in.index[id]
	if !ok {
		return nil, false
	}
	return in.states[i], true
}

// Get Returns the state with the given handle.
func (in *Interner) Get(index int) *State {
	return in.states[index]
}

// Len Number of interned states.
func (in *Interner) Len() int {
	return len(in.states)
}

// States Returns all interned states in insertion order.
func (in *Interner) States() []*State {
	return in.states
}

func (in *Interner) All() iter.Seq2[string, *State] {
	return func(yield func(string, *State) bool) {
		for _, s := range in.states {
			if !yield(s.ID, s) {
				return
			}
		}
	}
}
