// Package rc implements reference-counted shared-ownership handles.
//
// A Shared[T] owns a value jointly with every other Shared cloned from
// it; the value is disposed exactly once, synchronously, when the last
// owning handle is released. A Weak[T] observes the value without
// keeping it alive and can be promoted back to a Shared while the value
// still is.
//
// # Ownership Blocks
//
// Every independently acquired value gets exactly one ownership block:
// a header holding the strong and weak counts plus the disposal variant
// for the value. Handles are (block, address) pairs; the address is
// what Get returns, the block is what lifetime is delegated to. The two
// are deliberately decoupled so a handle can expose one address while
// keeping a different object alive (see Alias).
//
// The block goes through three states: live (strong > 0), expiring
// (strong == 0, weak > 0, value already disposed) and gone. Liveness
// never re-enters a previous state.
//
// # Handle Lifecycle
//
// Go has no copy constructors or destructors, so the lifecycle is
// explicit:
//
//	p, err := rc.New(obj)   // acquire: strong count 1
//	q := p.Clone()          // copy: strong count 2
//	q.Release()             // drop one owner
//	p.Release()             // last owner: value disposed here
//
// Assign and Adopt are the assignment forms; both tolerate the two
// handles already sharing a block (including self-assignment) without
// letting the count touch zero in passing.
//
// A handle struct must not be duplicated with a plain Go copy: the copy
// would share the block without a count increment, and releasing both
// corrupts the count. Always use Clone, Assign, Steal or Adopt.
//
// # Disposal
//
// Three block variants cover the ways a value can be released:
//
//	rc.New(p)           default: runs p.Drop() if *T implements sharedref.Dropper
//	rc.NewFunc(p, fn)   disposer: runs fn(p)
//	rc.Make(v)          in-place: value lives inside the block, zeroed on disposal
//
// If creating the block fails (see SetAllocator), NewFunc and ResetFunc
// invoke the disposer on the pointer before reporting the error, so the
// resource being handed over is never silently leaked.
//
// # Thread Safety
//
// None, by design. Counts are plain integers; handles sharing a block
// must stay on one goroutine or be externally synchronized.
package rc
