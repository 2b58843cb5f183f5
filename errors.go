package powerset

import (
	"errors"
	"fmt"
)

var (
	// ErrStartNotFound is returned when the start state is not one of the declared states.
	ErrStartNotFound = errors.New("powerset: start state not found")

	// ErrUnknownState is returned when a transition references an undeclared state.
	ErrUnknownState = errors.New("powerset: unknown state")

	// ErrTooComplex is matched by *TooComplexError.
	ErrTooComplex = errors.New("powerset: automaton too complex to determinize")

	ErrAlreadyDeterminized = errors.New("powerset: automaton already determinized")
	ErrNotDeterminized     = errors.New("powerset: automaton not determinized")
)

// TooComplexError Reports an NFA whose power set would exceed the configured state limit.
type TooComplexError struct {
	States int // original states
	Limit  int // maximum original states allowed
}

func (e *TooComplexError) Error() string {
	return fmt.Sprintf("powerset: %d states need 2^%d subsets, limit is %d states", e.States, e.States, e.Limit)
}

func (e *TooComplexError) Is(target error) bool {
	return target == ErrTooComplex
}
