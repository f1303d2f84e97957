package sharedref

import (
	"github.com/wippyai/sharedref/errors"
)

// LimitAllocator is an Allocator with a fixed byte budget. Reservations
// beyond the budget fail with a structured budget error. It is the
// canonical way to exercise allocation-failure paths in tests and to
// put a hard cap on block storage in long-running processes.
//
// LimitAllocator is not safe for concurrent use, matching the
// single-threaded model of the rc package.
type LimitAllocator struct {
	limit uintptr
	used  uintptr
}

// NewLimitAllocator returns an allocator that refuses reservations once
// limit bytes are in use.
func NewLimitAllocator(limit uintptr) *LimitAllocator {
	return &LimitAllocator{limit: limit}
}

// Reserve claims size bytes, failing if the budget would be exceeded.
func (a *LimitAllocator) Reserve(size uintptr) error {
	if a.used+size > a.limit {
		return errors.BudgetExceeded(size, a.used, a.limit)
	}
	a.used += size
	return nil
}

// Release returns size bytes to the budget.
func (a *LimitAllocator) Release(size uintptr) {
	if size > a.used {
		panic("sharedref: allocator release exceeds reserved bytes")
	}
	a.used -= size
}

// Used reports the bytes currently reserved.
func (a *LimitAllocator) Used() uintptr { return a.used }

// Limit reports the budget.
func (a *LimitAllocator) Limit() uintptr { return a.limit }
