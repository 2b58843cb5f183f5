package powerset

import (
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// subset A set of original states, by index.
type subset struct {
	bits *bitset.BitSet
}

func newSubset(n int) subset {
	return subset{bits: bitset.New(uint(n))}
}

// subsetOfMask Decodes the enumeration counter: digit i, most significant first, selects
// original state i.
func subsetOfMask(mask uint64, n int) subset {
	s := newSubset(n)
	for i := 0; i < n; i++ {
		if mask&(1<<uint(n-1-i)) != 0 {
			s.bits.Set(uint(i))
		}
	}
	return s
}

func (s subset) add(index int) {
	s.bits.Set(uint(index))
}

func (s subset) empty() bool {
	return s.bits.None()
}

// each Calls fn with every member index in ascending order.
func (s subset) each(fn func(index int)) {
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		fn(int(i))
	}
}

// names Returns the sorted, deduplicated names of the members.
func (s subset) names(states []*State) []string {
	names := make([]string, 0, s.bits.Count())
	s.each(func(i int) {
		names = append(names, states[i].ID)
	})
	slices.Sort(names)
	return slices.Compact(names)
}

// compositeID Joins sorted member names into a composite identifier.
func compositeID(members []string) string {
	return strings.Join(members, "")
}
