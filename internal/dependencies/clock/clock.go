package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock provides time operations that can be mocked for testing. Timers are
// clockwork timers so tests can drive them with a fake clock.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) clockwork.Timer
}

// RealClock implements Clock using the system clock
type RealClock struct {
	inner clockwork.Clock
}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{inner: clockwork.NewRealClock()}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return c.inner.Now()
}

// NewTimer returns a timer that fires after d
func (c *RealClock) NewTimer(d time.Duration) clockwork.Timer {
	return c.inner.NewTimer(d)
}
