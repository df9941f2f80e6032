package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/leagueops/leaguekeeper/internal/dependencies/mocks"
	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/storage"
	"github.com/leagueops/leaguekeeper/internal/storage/memory"
	"github.com/leagueops/leaguekeeper/internal/testutil"
)

type SchedulerSuite struct {
	suite.Suite
	storage   *memory.Storage
	clock     *mocks.MockClock
	notifier  *mocks.MockNotifier
	scheduler *Scheduler
	ctx       context.Context
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerSuite))
}

func (s *SchedulerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC))
	s.notifier = mocks.NewMockNotifier()
	s.scheduler = New(s.storage, storage.NewGuard(), s.clock, s.notifier, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()

	s.Require().NoError(s.storage.SaveClubs(s.ctx, []model.Club{
		{ID: 1, Name: "Arsenal"},
		{ID: 2, Name: "Chelsea"},
	}))
}

func (s *SchedulerSuite) TearDownTest() {
	s.scheduler.Stop()
}

func (s *SchedulerSuite) seedMatch(id int, kickoff time.Time) model.Match {
	m := model.Match{
		ID:            id,
		Club1ID:       1,
		Club2ID:       2,
		ScheduledTime: kickoff,
		Status:        model.StatusScheduled,
	}
	matches, err := s.storage.LoadMatches(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.storage.SaveMatches(s.ctx, append(matches, m)))
	return m
}

func (s *SchedulerSuite) match(id int) model.Match {
	matches, err := s.storage.LoadMatches(s.ctx)
	s.Require().NoError(err)
	i := storage.FindByID(matches, id)
	s.Require().GreaterOrEqual(i, 0)
	return matches[i]
}

func (s *SchedulerSuite) waitForFire(matchID int) {
	select {
	case id := <-s.notifier.Fired:
		s.Equal(matchID, id)
	case <-time.After(2 * time.Second):
		s.FailNow("reminder did not fire")
	}
}

func (s *SchedulerSuite) assertNoFire() {
	select {
	case id := <-s.notifier.Fired:
		s.FailNowf("unexpected reminder", "match %d", id)
	case <-time.After(100 * time.Millisecond):
	}
}

// Timer path tests

func (s *SchedulerSuite) TestArmedTimerFiresAtReminderTime() {
	m := s.seedMatch(1, s.clock.Now().Add(10*time.Minute))
	s.scheduler.Arm(m)
	s.Equal(1, s.scheduler.PendingTimers())

	s.clock.BlockUntil(1)
	s.clock.Advance(5 * time.Minute)
	s.waitForFire(m.ID)

	s.True(s.match(m.ID).ReminderSent)
	s.Equal(1, s.notifier.CallCount())
}

func (s *SchedulerSuite) TestArmedTimerDoesNotFireEarly() {
	m := s.seedMatch(1, s.clock.Now().Add(10*time.Minute))
	s.scheduler.Arm(m)

	s.clock.BlockUntil(1)
	s.clock.Advance(4 * time.Minute)
	s.assertNoFire()
	s.False(s.match(m.ID).ReminderSent)
}

func (s *SchedulerSuite) TestArmInsideLeadWindowLeavesItToSweep() {
	m := s.seedMatch(1, s.clock.Now().Add(3*time.Minute))
	s.scheduler.Arm(m)
	s.Equal(0, s.scheduler.PendingTimers())
}

func (s *SchedulerSuite) TestArmSkipsNonScheduledMatch() {
	m := s.seedMatch(1, s.clock.Now().Add(10*time.Minute))
	m.Status = model.StatusCancelled
	s.scheduler.Arm(m)
	s.Equal(0, s.scheduler.PendingTimers())
}

func (s *SchedulerSuite) TestArmSkipsAlreadySentMatch() {
	m := s.seedMatch(1, s.clock.Now().Add(10*time.Minute))
	m.ReminderSent = true
	s.scheduler.Arm(m)
	s.Equal(0, s.scheduler.PendingTimers())
}

func (s *SchedulerSuite) TestRearmReplacesTimer() {
	m := s.seedMatch(1, s.clock.Now().Add(10*time.Minute))
	s.scheduler.Arm(m)
	s.scheduler.Arm(m)
	s.Equal(1, s.scheduler.PendingTimers())
}

// Cancellation tests

func (s *SchedulerSuite) TestCancelPreventsDispatch() {
	m := s.seedMatch(1, s.clock.Now().Add(10*time.Minute))
	s.scheduler.Arm(m)

	s.clock.BlockUntil(1)
	s.scheduler.CancelReminder(m.ID)
	s.Equal(0, s.scheduler.PendingTimers())

	s.clock.Advance(10 * time.Minute)
	s.assertNoFire()
	s.False(s.match(m.ID).ReminderSent)
}

func (s *SchedulerSuite) TestCancelUnknownMatchIsNoOp() {
	s.scheduler.CancelReminder(42)
	s.scheduler.CancelReminder(42)
}

func (s *SchedulerSuite) TestCancelAfterFireIsNoOp() {
	m := s.seedMatch(1, s.clock.Now().Add(10*time.Minute))
	s.scheduler.Arm(m)

	s.clock.BlockUntil(1)
	s.clock.Advance(5 * time.Minute)
	s.waitForFire(m.ID)

	s.scheduler.CancelReminder(m.ID)
}

// Sweep tests

func (s *SchedulerSuite) TestSweepDispatchesMatchInWindow() {
	m := s.seedMatch(1, s.clock.Now().Add(5*time.Minute))

	s.scheduler.sweep(s.ctx)

	s.Equal(1, s.notifier.CallCount())
	s.True(s.match(m.ID).ReminderSent)
}

func (s *SchedulerSuite) TestSweepWindowBounds() {
	s.seedMatch(1, s.clock.Now().Add(4*time.Minute))
	s.seedMatch(2, s.clock.Now().Add(6*time.Minute))
	s.seedMatch(3, s.clock.Now().Add(3*time.Minute))
	s.seedMatch(4, s.clock.Now().Add(7*time.Minute))

	s.scheduler.sweep(s.ctx)

	s.Equal(2, s.notifier.CallCount())
	s.True(s.match(1).ReminderSent)
	s.True(s.match(2).ReminderSent)
	s.False(s.match(3).ReminderSent)
	s.False(s.match(4).ReminderSent)
}

func (s *SchedulerSuite) TestSweepSkipsSentAndNonScheduled() {
	sent := s.seedMatch(1, s.clock.Now().Add(5*time.Minute))
	s.markAlreadySent(sent.ID)
	cancelled := s.seedMatch(2, s.clock.Now().Add(5*time.Minute))
	s.setStatus(cancelled.ID, model.StatusCancelled)

	s.scheduler.sweep(s.ctx)

	s.Equal(0, s.notifier.CallCount())
}

func (s *SchedulerSuite) TestSweepIsIdempotent() {
	m := s.seedMatch(1, s.clock.Now().Add(5*time.Minute))

	s.scheduler.sweep(s.ctx)
	s.scheduler.sweep(s.ctx)

	s.Equal(1, s.notifier.CallCount())
	s.True(s.match(m.ID).ReminderSent)
}

// Dispatch tests

func (s *SchedulerSuite) TestDispatchRacesFireExactlyOnce() {
	m := s.seedMatch(1, s.clock.Now().Add(5*time.Minute))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.scheduler.dispatch(s.ctx, m.ID)
		}()
	}
	wg.Wait()

	s.Equal(1, s.notifier.CallCount())
	s.True(s.match(m.ID).ReminderSent)
}

func (s *SchedulerSuite) TestDispatchMissingClubAbandonsSilently() {
	m := s.seedMatch(1, s.clock.Now().Add(5*time.Minute))
	s.Require().NoError(s.storage.SaveClubs(s.ctx, []model.Club{{ID: 1, Name: "Arsenal"}}))

	s.scheduler.dispatch(s.ctx, m.ID)

	s.Equal(0, s.notifier.CallCount())
	s.False(s.match(m.ID).ReminderSent)
}

func (s *SchedulerSuite) TestDispatchMissingMatchIsNoOp() {
	s.scheduler.dispatch(s.ctx, 42)
	s.Equal(0, s.notifier.CallCount())
}

func (s *SchedulerSuite) TestNotifierFailureStillMarksSent() {
	m := s.seedMatch(1, s.clock.Now().Add(5*time.Minute))
	s.notifier.Err = errors.New("webhook down")

	s.scheduler.dispatch(s.ctx, m.ID)

	s.Equal(1, s.notifier.CallCount())
	s.True(s.match(m.ID).ReminderSent)

	// a retry never happens
	s.scheduler.dispatch(s.ctx, m.ID)
	s.Equal(1, s.notifier.CallCount())
}

// Run loop tests

func (s *SchedulerSuite) TestRunSweepsOnInterval() {
	m := s.seedMatch(1, s.clock.Now().Add(6*time.Minute))

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.scheduler.Run(ctx) }()

	s.clock.BlockUntil(1)
	s.clock.Advance(time.Minute)
	s.waitForFire(m.ID)

	cancel()
	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(2 * time.Second):
		s.FailNow("run loop did not exit")
	}
}

func (s *SchedulerSuite) TestCancelledMatchNeverFires() {
	// Create a match 10 minutes out, cancel it before the lead window.
	m := s.seedMatch(1, s.clock.Now().Add(10*time.Minute))
	s.scheduler.Arm(m)

	s.clock.BlockUntil(1)
	s.clock.Advance(time.Minute)
	s.setStatus(m.ID, model.StatusCancelled)
	s.scheduler.CancelReminder(m.ID)

	s.clock.Advance(9 * time.Minute)
	s.assertNoFire()
	s.False(s.match(m.ID).ReminderSent)
}

func (s *SchedulerSuite) markAlreadySent(id int) {
	matches, err := s.storage.LoadMatches(s.ctx)
	s.Require().NoError(err)
	i := storage.FindByID(matches, id)
	s.Require().GreaterOrEqual(i, 0)
	matches[i].ReminderSent = true
	s.Require().NoError(s.storage.SaveMatches(s.ctx, matches))
}

func (s *SchedulerSuite) setStatus(id int, status model.MatchStatus) {
	matches, err := s.storage.LoadMatches(s.ctx)
	s.Require().NoError(err)
	i := storage.FindByID(matches, id)
	s.Require().GreaterOrEqual(i, 0)
	matches[i].Status = status
	s.Require().NoError(s.storage.SaveMatches(s.ctx, matches))
}
