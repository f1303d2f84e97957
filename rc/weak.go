package rc

// Weak is a non-owning handle: it keeps an ownership block's bookkeeping
// alive without keeping the managed value alive. The zero value is an
// empty weak handle. Create one with Shared.Downgrade.
type Weak[T any] struct {
	blk *block
	ptr *T
}

// Clone returns another weak handle observing the same block.
func (w Weak[T]) Clone() Weak[T] {
	if w.blk != nil {
		w.blk.incWeak()
	}
	return Weak[T]{blk: w.blk, ptr: w.ptr}
}

// Assign replaces w's observed block with o's. Same-block assignment,
// self-assignment included, adopts only the address so the weak count
// never crosses zero in passing.
func (w *Weak[T]) Assign(o Weak[T]) {
	if w.blk == o.blk {
		w.ptr = o.ptr
		return
	}
	old := w.blk
	w.blk = o.blk
	if w.blk != nil {
		w.blk.incWeak()
	}
	w.ptr = o.ptr
	if old != nil {
		old.decWeak()
	}
}

// Steal moves the observation out of w, leaving it empty.
func (w *Weak[T]) Steal() Weak[T] {
	out := Weak[T]{blk: w.blk, ptr: w.ptr}
	w.blk = nil
	w.ptr = nil
	return out
}

// Adopt moves o's observation into w and empties o, mirroring
// Shared.Adopt on the weak count.
func (w *Weak[T]) Adopt(o *Weak[T]) {
	if w == o {
		return
	}
	if w.blk == o.blk {
		w.ptr = o.ptr
		if o.blk != nil {
			o.blk.decWeak()
		}
		o.blk = nil
		o.ptr = nil
		return
	}
	if w.blk != nil {
		w.blk.decWeak()
	}
	w.blk = o.blk
	w.ptr = o.ptr
	o.blk = nil
	o.ptr = nil
}

// Release drops the observation and empties the handle. Idempotent.
func (w *Weak[T]) Release() {
	if w.blk != nil {
		w.blk.decWeak()
	}
	w.blk = nil
	w.ptr = nil
}

// Lock promotes the weak handle to an owning one. It returns an empty
// Shared if w is empty or the value has already been disposed;
// otherwise it returns an owning handle with w's cached address. The
// check and the increment are one step in the single-threaded model:
// no disposal can be observed in between. Lock is the only promotion
// path.
func (w Weak[T]) Lock() Shared[T] {
	if w.blk == nil || w.blk.strongCount() == 0 {
		return Shared[T]{}
	}
	w.blk.incStrong()
	return Shared[T]{blk: w.blk, ptr: w.ptr}
}

// Expired reports whether the observed value is gone: true for an
// empty handle or one whose block has no owners left.
func (w Weak[T]) Expired() bool {
	return w.blk == nil || w.blk.strongCount() == 0
}

// StrongCount returns the observed block's strong count, 0 if empty.
func (w Weak[T]) StrongCount() uint {
	if w.blk == nil {
		return 0
	}
	return w.blk.strongCount()
}
