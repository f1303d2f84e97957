package rc

import (
	"unsafe"

	"github.com/wippyai/sharedref"
	"github.com/wippyai/sharedref/errors"
)

// disposal is the polymorphic dispose capability of an ownership block.
// It is a closed set: ptrBlock, funcBlock and valBlock are the only
// implementations. dispose destroys the managed value, never the block.
type disposal interface {
	dispose()
}

// block is the ownership block, created once per independently acquired
// value. Handles of any element type may share one block, so the block
// itself is not generic; the variant payload carries the element type
// and points back here via state.
type block struct {
	strong uint
	weak   uint
	state  disposal
	alloc  sharedref.Allocator
	size   uintptr
	dead   bool
}

// incStrong is valid only through a handle that already owns the block,
// so strong is at least 1 on entry.
func (b *block) incStrong() {
	if b.dead {
		panic("rc: use of freed ownership block")
	}
	b.strong++
}

func (b *block) decStrong() {
	if b.dead {
		panic("rc: use of freed ownership block")
	}
	if b.strong == 0 {
		panic("rc: strong count underflow")
	}
	b.strong--
	if b.strong != 0 {
		return
	}
	b.state.dispose()
	observe(EventDisposed, b)
	if b.weak == 0 {
		b.free()
	}
}

func (b *block) incWeak() {
	if b.dead {
		panic("rc: use of freed ownership block")
	}
	b.weak++
}

func (b *block) decWeak() {
	if b.dead {
		panic("rc: use of freed ownership block")
	}
	if b.weak == 0 {
		panic("rc: weak count underflow")
	}
	b.weak--
	if b.weak == 0 && b.strong == 0 {
		b.free()
	}
}

func (b *block) strongCount() uint { return b.strong }

// free returns the block's storage reservation. Exactly one decrement
// observes both counts at zero and gets here; the single-threaded model
// makes that deterministic.
func (b *block) free() {
	observe(EventFreed, b)
	b.state = nil
	b.dead = true
	if b.alloc != nil {
		b.alloc.Release(b.size)
	}
}

// ptrBlock owns an external *T. Disposal runs Drop if the pointee
// implements sharedref.Dropper; otherwise the value is left to the GC.
type ptrBlock[T any] struct {
	block
	obj *T
}

func newPtrBlock[T any](p *T) (*block, error) {
	size := unsafe.Sizeof(ptrBlock[T]{})
	a := currentAllocator()
	if err := a.Reserve(size); err != nil {
		return nil, errors.AllocationFailed(size, err)
	}
	pb := &ptrBlock[T]{block: block{strong: 1, alloc: a, size: size}, obj: p}
	pb.state = pb
	observe(EventAcquired, &pb.block)
	return &pb.block, nil
}

func (b *ptrBlock[T]) dispose() {
	if b.obj != nil {
		if d, ok := any(b.obj).(sharedref.Dropper); ok {
			d.Drop()
		}
	}
	b.obj = nil
}

// funcBlock owns an external *T plus a caller-supplied disposer.
type funcBlock[T any] struct {
	block
	obj *T
	fn  func(*T)
}

// newFuncBlock creates a disposer-variant block. On allocation failure
// the disposer is invoked on p before the error is returned, so the
// caller's resource is not leaked.
func newFuncBlock[T any](p *T, fn func(*T)) (*block, error) {
	size := unsafe.Sizeof(funcBlock[T]{})
	a := currentAllocator()
	if err := a.Reserve(size); err != nil {
		if fn != nil {
			fn(p)
		}
		return nil, errors.AllocationFailed(size, err)
	}
	fb := &funcBlock[T]{block: block{strong: 1, alloc: a, size: size}, obj: p, fn: fn}
	fb.state = fb
	observe(EventAcquired, &fb.block)
	return &fb.block, nil
}

func (b *funcBlock[T]) dispose() {
	if b.obj != nil && b.fn != nil {
		b.fn(b.obj)
	}
	b.obj = nil
	b.fn = nil
}

// valBlock embeds the managed value directly after the header, so the
// header and the value share one allocation. Disposal destructs the
// value in place; the storage itself lives until the block is freed.
type valBlock[T any] struct {
	block
	live bool
	val  T
}

func newValBlock[T any](init func(*T)) (*valBlock[T], error) {
	size := unsafe.Sizeof(valBlock[T]{})
	a := currentAllocator()
	if err := a.Reserve(size); err != nil {
		return nil, errors.AllocationFailed(size, err)
	}
	vb := &valBlock[T]{block: block{strong: 1, alloc: a, size: size}, live: true}
	init(&vb.val)
	vb.state = vb
	observe(EventAcquired, &vb.block)
	return vb, nil
}

func (b *valBlock[T]) dispose() {
	if !b.live {
		return
	}
	b.live = false
	if d, ok := any(&b.val).(sharedref.Dropper); ok {
		d.Drop()
	}
	var zero T
	b.val = zero
}
