package rc

import (
	"testing"
)

// guard tracks live instances of the test value type, mirroring the
// instrumentation contract: after the last owning handle to a value is
// gone, no instance of it may remain alive.
type guard struct {
	t     *testing.T
	live  int
	total int
}

func newGuard(t *testing.T) *guard {
	g := &guard{t: t}
	t.Cleanup(func() {
		if g.live != 0 {
			t.Errorf("%d instances still alive at end of test", g.live)
		}
	})
	return g
}

func (g *guard) expectNoInstances() {
	g.t.Helper()
	if g.live != 0 {
		g.t.Fatalf("expected no live instances, have %d", g.live)
	}
}

func (g *guard) expectLive(n int) {
	g.t.Helper()
	if g.live != n {
		g.t.Fatalf("expected %d live instances, have %d", n, g.live)
	}
}

// counted is the instrumented value type used across the handle tests.
type counted struct {
	g     *guard
	value int
}

func (c *counted) Drop() {
	c.g.live--
}

// alloc creates a heap instance for New/NewFunc/Reset tests.
func (g *guard) alloc(v int) *counted {
	g.live++
	g.total++
	return &counted{g: g, value: v}
}

// value creates an instance by value for Make tests.
func (g *guard) value(v int) counted {
	g.live++
	g.total++
	return counted{g: g, value: v}
}

func mustStrong[T any](t *testing.T, s Shared[T], want uint) {
	t.Helper()
	if got := s.StrongCount(); got != want {
		t.Fatalf("StrongCount() = %d, want %d", got, want)
	}
}
