// Package testutil provides shared test helpers.
package testutil

import (
	"sync"
	"time"
)

// FrozenClock provides a thread-safe clock pinned to a fixed instant.
//
// Render output embeds a generation timestamp; tests that compare rendered
// documents against golden files need that timestamp to be deterministic.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type FrozenClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFrozenClock creates a clock pinned to the given instant.
func NewFrozenClock(at time.Time) *FrozenClock {
	return &FrozenClock{now: at}
}

// Now returns the pinned instant. Matches the signature of time.Now so it can
// be plugged into render.Renderer.Now directly.
func (c *FrozenClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the pinned instant forward by d.
func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
