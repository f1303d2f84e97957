// Package errors provides structured error types for the sharedref library.
//
// Errors are categorized by Phase (which handle operation failed) and
// Kind (error category). The only failure the core can report is a
// failed block acquisition; everything else in the handle API either
// succeeds or is a programming error that panics.
//
// Use the convenience constructors:
//
//	err := errors.AllocationFailed(size, cause)
//	err := errors.BudgetExceeded(size, used, limit)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
