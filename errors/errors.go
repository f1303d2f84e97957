package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which handle operation the error occurred in
type Phase string

const (
	PhaseAcquire Phase = "acquire" // block creation (New/NewFunc/Make/Reset)
	PhaseRelease Phase = "release" // strong/weak decrement and disposal
	PhasePromote Phase = "promote" // weak-to-strong promotion
	PhaseVerify  Phase = "verify"  // leak verification
)

// Kind categorizes the error
type Kind string

const (
	KindAllocation   Kind = "allocation"
	KindBudget       Kind = "budget"
	KindUseAfterFree Kind = "use_after_free"
	KindLeak         Kind = "leak"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the error patterns the library produces

// AllocationFailed reports that an ownership block could not be created.
// The handle that was being constructed or reset is empty.
func AllocationFailed(size uintptr, cause error) *Error {
	return &Error{
		Phase:  PhaseAcquire,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to reserve %d bytes for ownership block", size),
		Cause:  cause,
		Value:  size,
	}
}

// BudgetExceeded reports that an allocator refused a reservation.
func BudgetExceeded(size, used, limit uintptr) *Error {
	return &Error{
		Phase:  PhaseAcquire,
		Kind:   KindBudget,
		Detail: fmt.Sprintf("reserve %d bytes: %d of %d in use", size, used, limit),
		Value:  size,
	}
}

// Leaked reports outstanding instances found during verification.
func Leaked(what string, n int) *Error {
	return &Error{
		Phase:  PhaseVerify,
		Kind:   KindLeak,
		Detail: fmt.Sprintf("%d outstanding %s", n, what),
		Value:  n,
	}
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
