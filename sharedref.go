package sharedref

// Dropper is optionally implemented by managed values that need cleanup
// when their last owning handle is released. Values that do not
// implement Dropper are simply left to the garbage collector.
type Dropper interface {
	Drop()
}

// Allocator accounts for ownership block storage. The rc package
// reserves space before creating a block and releases it when the block
// is deallocated. Go's heap cannot report exhaustion, so allocation
// failure is modeled as a reservation against a budget: a Reserve error
// makes the acquiring operation fail without leaking the resource being
// acquired.
type Allocator interface {
	// Reserve claims size bytes of block storage. A non-nil error
	// aborts the acquisition.
	Reserve(size uintptr) error

	// Release returns size bytes previously claimed with Reserve.
	Release(size uintptr)
}

// Heap returns the default allocator. Its reservations never fail.
func Heap() Allocator { return heapAllocator{} }

type heapAllocator struct{}

func (heapAllocator) Reserve(uintptr) error { return nil }
func (heapAllocator) Release(uintptr)       {}
