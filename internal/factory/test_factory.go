package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/leagueops/leaguekeeper/internal/dependencies/mocks"
	"github.com/leagueops/leaguekeeper/internal/services/reminder"
	"github.com/leagueops/leaguekeeper/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock    *mocks.MockClock
	MockNotifier *mocks.MockNotifier
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC))
	mockNotifier := mocks.NewMockNotifier()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockNotifier, reminder.DefaultConfig(), logger)

	return &TestApp{
		App:          app,
		MockClock:    mockClock,
		MockNotifier: mockNotifier,
	}
}
