package rc

// Make acquires a copy of v constructed in place inside its own
// ownership block: header and value share a single allocation. The
// returned handle's address points at the embedded storage. The value
// is disposed exactly once — Drop runs if *T implements
// sharedref.Dropper, then the storage is zeroed in place — while the
// block itself survives until the last weak handle is gone.
func Make[T any](v T) (Shared[T], error) {
	return MakeWith(func(p *T) { *p = v })
}

// MakeWith is Make for values that must be constructed in their final
// location: init is called with a pointer to the zeroed embedded
// storage and builds the value there.
func MakeWith[T any](init func(*T)) (Shared[T], error) {
	vb, err := newValBlock(init)
	if err != nil {
		return Shared[T]{}, err
	}
	return Shared[T]{blk: &vb.block, ptr: &vb.val}, nil
}
