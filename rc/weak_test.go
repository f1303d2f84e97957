package rc

import (
	"testing"
)

func TestWeakZeroValue(t *testing.T) {
	var w Weak[counted]

	if !w.Expired() {
		t.Fatal("zero weak handle should be expired")
	}
	if w.Lock().Valid() {
		t.Fatal("locking an empty weak handle should yield an empty handle")
	}
}

func TestWeakLock(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	w := p.Downgrade()

	r := w.Lock()
	if !r.Equal(p) {
		t.Fatal("locked handle should equal the original")
	}
	if r.Deref().value != 42 {
		t.Fatalf("value = %d, want 42", r.Deref().value)
	}
	mustStrong(t, p, 2)

	r.Release()
	w.Release()
	p.Release()
	g.expectNoInstances()
}

func TestWeakLockAfterRelease(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	w := p.Downgrade()

	p.Release()
	g.expectNoInstances()

	r := w.Lock()
	if r.Valid() {
		t.Fatal("lock after the last owner is gone should be empty")
	}
	if !w.Expired() {
		t.Fatal("weak handle should report expired")
	}

	w.Release()
}

func TestWeakDoesNotKeepValueAlive(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	w := p.Downgrade()
	w2 := w.Clone()

	// Disposal happens at the last strong release no matter how many
	// weak observers remain.
	p.Release()
	g.expectNoInstances()

	w.Release()
	w2.Release()
}

func TestWeakClone(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	w := p.Downgrade()
	w2 := w.Clone()

	s := w2.Lock()
	if !s.Equal(p) {
		t.Fatal("clone should observe the same value")
	}

	s.Release()
	w2.Release()
	w.Release()
	p.Release()
	g.expectNoInstances()
}

func TestWeakCloneEmpty(t *testing.T) {
	var w Weak[counted]
	w2 := w.Clone()
	if !w2.Expired() {
		t.Fatal("clone of an empty weak handle should be expired")
	}
}

func TestWeakSteal(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	w := p.Downgrade()
	w2 := w.Steal()

	if !w.Expired() {
		t.Fatal("source should be empty after Steal")
	}
	s := w2.Lock()
	if !s.Equal(p) {
		t.Fatal("stolen handle should observe the value")
	}

	s.Release()
	w2.Release()
	p.Release()
	g.expectNoInstances()
}

func TestWeakAssign(t *testing.T) {
	g := newGuard(t)

	p1, _ := New(g.alloc(42))
	w1 := p1.Downgrade()
	p2, _ := New(g.alloc(43))
	w2 := p2.Downgrade()

	w1.Assign(w2)

	if s := w1.Lock(); !s.Equal(p2) {
		t.Fatal("w1 should observe p2 after assignment")
	} else {
		s.Release()
	}
	if s := w2.Lock(); !s.Equal(p2) {
		t.Fatal("w2 should still observe p2")
	} else {
		s.Release()
	}

	w1.Release()
	w2.Release()
	p1.Release()
	p2.Release()
	g.expectNoInstances()
}

func TestWeakAssignFromEmpty(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	w1 := p.Downgrade()
	var w2 Weak[counted]

	w1.Assign(w2)

	if !w1.Expired() || !w2.Expired() {
		t.Fatal("both weak handles should be empty")
	}

	p.Release()
	g.expectNoInstances()
}

func TestWeakAssignToEmpty(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	var w1 Weak[counted]
	w2 := p.Downgrade()

	w1.Assign(w2)

	if s := w1.Lock(); !s.Equal(p) {
		t.Fatal("w1 should observe p")
	} else {
		s.Release()
	}

	w1.Release()
	w2.Release()
	p.Release()
	g.expectNoInstances()
}

func TestWeakAssignBothEmpty(t *testing.T) {
	var w1, w2 Weak[counted]
	w1.Assign(w2)
	if !w1.Expired() || !w2.Expired() {
		t.Fatal("both weak handles should stay empty")
	}
}

func TestWeakAssignSelf(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	w := p.Downgrade()

	w.Assign(w)

	if s := w.Lock(); !s.Equal(p) {
		t.Fatal("self-assignment should not change the observation")
	} else {
		s.Release()
	}

	w.Release()
	p.Release()
	g.expectNoInstances()
}

func TestWeakAssignSelfEmpty(t *testing.T) {
	var w Weak[counted]
	w.Assign(w)
	if !w.Expired() {
		t.Fatal("empty weak handle should stay empty")
	}
}

func TestWeakAdopt(t *testing.T) {
	g := newGuard(t)

	p1, _ := New(g.alloc(42))
	w1 := p1.Downgrade()
	p2, _ := New(g.alloc(43))
	w2 := p2.Downgrade()

	w1.Adopt(&w2)

	if s := w1.Lock(); !s.Equal(p2) {
		t.Fatal("w1 should observe p2")
	} else {
		s.Release()
	}
	if !w2.Expired() {
		t.Fatal("source should be empty after Adopt")
	}

	w1.Release()
	p1.Release()
	p2.Release()
	g.expectNoInstances()
}

func TestWeakAdoptFromEmpty(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	w1 := p.Downgrade()
	var w2 Weak[counted]

	w1.Adopt(&w2)

	if !w1.Expired() || !w2.Expired() {
		t.Fatal("both weak handles should be empty")
	}

	p.Release()
	g.expectNoInstances()
}

func TestWeakAdoptToEmpty(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	var w1 Weak[counted]
	w2 := p.Downgrade()

	w1.Adopt(&w2)

	if s := w1.Lock(); !s.Equal(p) {
		t.Fatal("w1 should observe p")
	} else {
		s.Release()
	}
	if !w2.Expired() {
		t.Fatal("source should be empty")
	}

	w1.Release()
	p.Release()
	g.expectNoInstances()
}

func TestWeakAdoptBothEmpty(t *testing.T) {
	var w1, w2 Weak[counted]
	w1.Adopt(&w2)
	if !w1.Expired() || !w2.Expired() {
		t.Fatal("both weak handles should stay empty")
	}
}

func TestWeakAdoptSelf(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	w := p.Downgrade()

	w.Adopt(&w)

	if s := w.Lock(); !s.Equal(p) {
		t.Fatal("self move-assignment should not change the observation")
	} else {
		s.Release()
	}

	w.Release()
	p.Release()
	g.expectNoInstances()
}

func TestWeakAdoptSameBlock(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	w1 := p.Downgrade()
	w2 := w1.Clone()

	w1.Adopt(&w2)

	if !w2.Expired() {
		t.Fatal("source should be empty")
	}
	if s := w1.Lock(); !s.Equal(p) {
		t.Fatal("w1 should still observe p")
	} else {
		s.Release()
	}

	w1.Release()
	p.Release()
	g.expectNoInstances()
}

func TestWeakOutlivesSharedFreesBlockOnLastWeak(t *testing.T) {
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	w := p.Downgrade()

	p.Release()
	g.expectNoInstances()

	// The block is still alive for the weak observer; releasing the
	// weak handle must be safe and must not re-dispose anything.
	w.Release()
	g.expectNoInstances()
}
