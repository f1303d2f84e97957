package rc

// Shared is an owning, reference-counted handle to a value of type T.
// The zero value is an empty handle: no block, no address.
//
// A Shared is a (block, address) pair. The address is what Get returns;
// the block is what the lifetime is delegated to. In ordinary use the
// two agree, but Alias can produce handles whose address is unrelated
// to the block's value, and New with a typed nil produces a handle that
// owns a block (StrongCount 1) yet exposes no value.
//
// Do not duplicate a Shared with a plain struct copy; use Clone,
// Assign, Steal or Adopt so the counts stay correct.
type Shared[T any] struct {
	blk *block
	ptr *T
}

// New acquires ownership of p, creating a fresh ownership block with
// strong count 1. p may be nil: the resulting handle still owns a block
// and reports StrongCount 1, which is distinct from the empty handle.
//
// On allocation failure the returned handle is empty.
func New[T any](p *T) (Shared[T], error) {
	blk, err := newPtrBlock(p)
	if err != nil {
		return Shared[T]{}, err
	}
	return Shared[T]{blk: blk, ptr: p}, nil
}

// NewFunc acquires ownership of p with a caller-supplied disposer,
// invoked on p when the last owner is released. If the block cannot be
// allocated, fn is invoked on p once before the error is returned and
// the returned handle is empty, so the resource is not leaked.
func NewFunc[T any](p *T, fn func(*T)) (Shared[T], error) {
	blk, err := newFuncBlock(p, fn)
	if err != nil {
		return Shared[T]{}, err
	}
	return Shared[T]{blk: blk, ptr: p}, nil
}

// Alias returns a handle that shares s's block but exposes p as its
// address. It is the way to hand out a pointer to part of an object
// while keeping the whole object alive, and it doubles as the
// conversion path between element types: pass the converted pointer.
//
// The address may be nil, and aliasing an empty handle yields a
// blockless handle carrying only the address.
func Alias[U, T any](s Shared[T], p *U) Shared[U] {
	if s.blk != nil {
		s.blk.incStrong()
	}
	return Shared[U]{blk: s.blk, ptr: p}
}

// Clone returns a new owning handle to the same value. Cloning an
// empty handle returns an empty handle.
func (s Shared[T]) Clone() Shared[T] {
	if s.blk != nil {
		s.blk.incStrong()
	}
	return Shared[T]{blk: s.blk, ptr: s.ptr}
}

// Assign replaces s's referent with o's, adjusting counts. When both
// handles already share a block — self-assignment included — only the
// address is adopted and no counts move, so the count never dips to
// zero in passing. Otherwise the new block is retained before the old
// one is released.
func (s *Shared[T]) Assign(o Shared[T]) {
	if s.blk == o.blk {
		s.ptr = o.ptr
		return
	}
	old := s.blk
	s.blk = o.blk
	if s.blk != nil {
		s.blk.incStrong()
	}
	s.ptr = o.ptr
	if old != nil {
		old.decStrong()
	}
}

// Steal moves ownership out of s, leaving it empty.
func (s *Shared[T]) Steal() Shared[T] {
	out := Shared[T]{blk: s.blk, ptr: s.ptr}
	s.blk = nil
	s.ptr = nil
	return out
}

// Adopt moves o's referent into s and empties o. Adopting from the
// handle itself is a no-op. When the two handles share a block, s
// adopts the address and o's ownership is retired without the count
// ever reaching zero (both handles held a reference, so it stays at
// least 1).
func (s *Shared[T]) Adopt(o *Shared[T]) {
	if s == o {
		return
	}
	if s.blk == o.blk {
		s.ptr = o.ptr
		if o.blk != nil {
			o.blk.decStrong()
		}
		o.blk = nil
		o.ptr = nil
		return
	}
	if s.blk != nil {
		s.blk.decStrong()
	}
	s.blk = o.blk
	s.ptr = o.ptr
	o.blk = nil
	o.ptr = nil
}

// Release drops s's ownership and empties the handle. If s was the last
// owner the value is disposed here. Releasing an empty handle is a
// no-op, so Release is safe to defer unconditionally.
func (s *Shared[T]) Release() {
	if s.blk != nil {
		s.blk.decStrong()
	}
	s.blk = nil
	s.ptr = nil
}

// Reset releases the current referent and acquires p as New would.
// On allocation failure the handle is left empty: the old referent has
// already been released and the new one was never acquired.
func (s *Shared[T]) Reset(p *T) error {
	s.Release()
	blk, err := newPtrBlock(p)
	if err != nil {
		return err
	}
	s.blk = blk
	s.ptr = p
	return nil
}

// ResetFunc releases the current referent and acquires p with a
// disposer as NewFunc would, including the invoke-disposer-on-failure
// guarantee. On failure the handle is left empty.
func (s *Shared[T]) ResetFunc(p *T, fn func(*T)) error {
	s.Release()
	blk, err := newFuncBlock(p, fn)
	if err != nil {
		return err
	}
	s.blk = blk
	s.ptr = p
	return nil
}

// Get returns the handle's address of record; nil for an empty handle.
func (s Shared[T]) Get() *T { return s.ptr }

// Valid reports whether the handle exposes a value. A handle owning a
// block around a nil pointer is not Valid even though its StrongCount
// is 1.
func (s Shared[T]) Valid() bool { return s.ptr != nil }

// Deref returns the managed value. It panics if the handle exposes no
// value; callers are expected to check Valid first.
func (s Shared[T]) Deref() T { return *s.ptr }

// StrongCount returns the number of owning handles sharing s's block,
// or 0 for an empty handle.
func (s Shared[T]) StrongCount() uint {
	if s.blk == nil {
		return 0
	}
	return s.blk.strongCount()
}

// Equal reports whether the two handles expose the same address. Block
// identity is deliberately ignored: an aliased handle compares unequal
// to the handle whose block it shares unless the addresses coincide,
// and two empty handles compare equal.
func (s Shared[T]) Equal(o Shared[T]) bool { return s.ptr == o.ptr }

// EqualPtr reports whether the handle's address equals p.
func (s Shared[T]) EqualPtr(p *T) bool { return s.ptr == p }

// Downgrade returns a weak handle observing s's block. The weak handle
// caches s's address for reuse if promotion succeeds.
func (s Shared[T]) Downgrade() Weak[T] {
	if s.blk != nil {
		s.blk.incWeak()
	}
	return Weak[T]{blk: s.blk, ptr: s.ptr}
}
