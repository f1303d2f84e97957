package rc

import "github.com/wippyai/sharedref"

var alloc sharedref.Allocator = sharedref.Heap()

// SetAllocator installs the allocator that block creation reserves
// storage from. Pass nil to restore the default heap allocator. Blocks
// remember the allocator they were reserved from, so swapping the
// allocator does not disturb blocks already alive.
func SetAllocator(a sharedref.Allocator) {
	if a == nil {
		a = sharedref.Heap()
	}
	alloc = a
}

func currentAllocator() sharedref.Allocator { return alloc }
