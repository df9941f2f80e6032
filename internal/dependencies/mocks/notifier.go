package mocks

import (
	"context"
	"sync"

	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/notify"
)

// MockNotifier records reminder invocations for assertions in tests. Set Err
// to make every invocation fail.
type MockNotifier struct {
	mu    sync.Mutex
	calls []NotifyCall

	// Err, if set, is returned from every Notify call
	Err error

	// Fired receives the match ID of each invocation; buffered so the
	// scheduler never blocks on it
	Fired chan int
}

// NotifyCall is one recorded Notify invocation
type NotifyCall struct {
	Match model.Match
	Club1 model.Club
	Club2 model.Club
}

// Ensure MockNotifier implements Notifier
var _ notify.Notifier = (*MockNotifier)(nil)

// NewMockNotifier creates a MockNotifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{
		Fired: make(chan int, 128),
	}
}

// Notify records the invocation
func (n *MockNotifier) Notify(ctx context.Context, match model.Match, club1, club2 model.Club) error {
	n.mu.Lock()
	n.calls = append(n.calls, NotifyCall{Match: match, Club1: club1, Club2: club2})
	n.mu.Unlock()

	select {
	case n.Fired <- match.ID:
	default:
	}
	return n.Err
}

// Calls returns a copy of the recorded invocations
func (n *MockNotifier) Calls() []NotifyCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]NotifyCall, len(n.calls))
	copy(out, n.calls)
	return out
}

// CallCount returns the number of recorded invocations
func (n *MockNotifier) CallCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}
