package trace

import (
	"sync"

	"github.com/wippyai/sharedref/errors"
)

// Counter tracks live instances of one managed value type. It is the
// instrumentation collaborator test harnesses use to assert "no
// outstanding instances": embed an Instance in the value, and the
// counter is decremented by the value's disposal.
//
// The zero Counter is ready to use.
type Counter struct {
	mu    sync.Mutex
	live  int
	total int
}

// NewInstance registers a new live instance and returns the token the
// value must embed.
func (c *Counter) NewInstance() Instance {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.live++
	c.total++
	return Instance{c: c}
}

// Live returns the number of instances not yet dropped.
func (c *Counter) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

// Total returns the number of instances ever created.
func (c *Counter) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Verify returns nil iff no instances are outstanding.
func (c *Counter) Verify() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.live != 0 {
		return errors.Leaked("instances", c.live)
	}
	return nil
}

func (c *Counter) drop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.live--
}

// Instance is the token a counted value embeds. Its Drop method makes
// any struct embedding it a sharedref.Dropper, so disposal by the last
// owning handle decrements the counter. The zero Instance is inert.
type Instance struct {
	c *Counter
}

// Drop implements sharedref.Dropper.
func (i *Instance) Drop() {
	if i.c != nil {
		i.c.drop()
		i.c = nil
	}
}
