package mocks

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/leagueops/leaguekeeper/internal/dependencies/clock"
)

// MockClock is a fake clock for testing, driven by clockwork. Advance moves
// time forward and fires any due timers.
type MockClock struct {
	*clockwork.FakeClock
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{FakeClock: clockwork.NewFakeClockAt(t)}
}
