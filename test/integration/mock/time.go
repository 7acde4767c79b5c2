package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock for scenarios that depend on "today". It
// satisfies the application's Clock port.
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock returns a clock pinned to the current wall time.
func NewClock() *Clock {
	return &Clock{current: time.Now().UTC()}
}

// SetCurrentTime pins the clock to the given instant.
func (c *Clock) SetCurrentTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// Now returns the pinned instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
