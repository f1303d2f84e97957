// Package sharedref provides reference-counted shared-ownership handles
// with weak observers for Go.
//
// The library implements an explicit ownership model on top of Go's
// garbage collector: a value is owned by one or more strong handles,
// observed by any number of weak handles, and disposed exactly once the
// moment its last strong handle goes away. Disposal is deterministic
// and synchronous, which makes the handles suitable for resources where
// "eventually, when the GC feels like it" is not good enough: pooled
// buffers, cache entries, file-descriptor wrappers, foreign handles.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	sharedref/           Root package with the Allocator and Dropper interfaces
//	├── rc/              Shared[T] and Weak[T] handles and the ownership block
//	├── errors/          Structured error types for acquisition failures
//	├── trace/           Lifecycle observers and leak-checking instrumentation
//	└── metrics/         Prometheus collector over trace statistics
//
// # Quick Start
//
// Acquire a value, share it, and let the last handle dispose it:
//
//	p, err := rc.New(NewConnection(addr))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	q := p.Clone()      // both handles own the connection
//	p.Release()         // still alive, q owns it
//	q.Release()         // Drop() runs here, exactly once
//
// Values that need cleanup implement the Dropper interface; values that
// do not are simply released to the garbage collector.
//
// # Weak Handles
//
// A weak handle observes a value without keeping it alive:
//
//	w := p.Downgrade()
//	if s := w.Lock(); s.Valid() {
//	    defer s.Release()
//	    use(s.Get())
//	}
//
// # Thread Safety
//
// Handles are NOT safe for concurrent use. Reference counts are plain
// integers by design; handles that share an ownership block must be
// confined to a single goroutine or externally synchronized. The trace
// and metrics packages guard their own state and may be read from other
// goroutines.
package sharedref
