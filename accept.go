package powerset

import "strings"

// AcceptFunc Decides whether the composite state with the given identifier and members
// (sorted original state names) is an accept state.
type AcceptFunc func(id string, members []string) bool

// Acceptance Builds an AcceptFunc from the names of the accepting original states.
type Acceptance func(accepting []string) AcceptFunc

// SubstringAcceptance A composite is accepting if any accepting name occurs as a substring of
// its identifier. This is only exact when every original name is a single character;
// with longer names it can report false positives ("ab" matches inside "cabd").
func SubstringAcceptance(accepting []string) AcceptFunc {
	names := append([]string(nil), accepting...)
	return func(id string, _ []string) bool {
		for _, name := range names {
			if strings.Contains(id, name) {
				return true
			}
		}
		return false
	}
}

// MembershipAcceptance A composite is accepting if one of its members is accepting.
func MembershipAcceptance(accepting []string) AcceptFunc {
	set := make(map[string]struct{}, len(accepting))
	for _, name := range accepting {
		set[name] = struct{}{}
	}
	return func(_ string, members []string) bool {
		for _, m := range members {
			if _, ok := set[m]; ok {
				return true
			}
		}
		return false
	}
}
