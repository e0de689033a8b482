package flow

import (
	"errors"
	"fmt"
	"slices"

	"voltflow_crm/internal/domain/entities"
)

// ErrInvalidTransition matches every *TransitionError through errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// IsTransitionAllowed reports whether a record of module may move from one
// status to another. An unknown from-status is never allowed to move.
func IsTransitionAllowed(module entities.Module, from, to string) bool {
	t, ok := registry[module]
	if !ok {
		return false
	}
	st, ok := t.stages[from]
	if !ok {
		return false
	}
	return slices.Contains(st.next, to)
}

// CanTransition is the typed form of IsTransitionAllowed.
func CanTransition[S Status](from, to S) bool {
	return IsTransitionAllowed(from.Module(), string(from), string(to))
}

// ValidateTransition returns a *TransitionError when the move is not allowed.
func ValidateTransition[S Status](from, to S) error {
	if CanTransition(from, to) {
		return nil
	}
	return &TransitionError{Module: from.Module(), From: string(from), To: string(to)}
}

// TransitionError describes a rejected status change. No write happened.
type TransitionError struct {
	Module entities.Module
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: transition %q -> %q not allowed", e.Module, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
