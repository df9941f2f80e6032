package reminder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/leagueops/leaguekeeper/internal/dependencies/clock"
	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/notify"
	"github.com/leagueops/leaguekeeper/internal/storage"
)

// Config controls reminder timing
type Config struct {
	// LeadTime is how long before kickoff the reminder fires
	LeadTime time.Duration
	// SweepInterval is how often the fallback sweep re-scans matches
	SweepInterval time.Duration
	// Tolerance widens the sweep's match window around LeadTime to absorb
	// sweep jitter
	Tolerance time.Duration
}

// DefaultConfig returns the default reminder timing
func DefaultConfig() Config {
	return Config{
		LeadTime:      5 * time.Minute,
		SweepInterval: 60 * time.Second,
		Tolerance:     time.Minute,
	}
}

// Scheduler delivers one pre-kickoff reminder per match. Two paths race to
// deliver it: a one-shot timer armed at match creation, and a periodic sweep
// that catches matches the timer path missed (process restarts, matches
// created inside the lead window). The reminder_sent flag, checked and set
// under the matches lock, makes the race safe: whichever path wins marks it
// sent, the loser sees the flag and backs off.
type Scheduler struct {
	store    storage.Store
	guard    *storage.Guard
	clock    clock.Clock
	notifier notify.Notifier
	cfg      Config
	logger   *slog.Logger

	mu     sync.Mutex
	timers map[int]clockwork.Timer

	baseCtx context.Context
	stop    context.CancelFunc
}

// New creates a reminder scheduler
func New(store storage.Store, guard *storage.Guard, clk clock.Clock, notifier notify.Notifier, cfg Config, logger *slog.Logger) *Scheduler {
	baseCtx, stop := context.WithCancel(context.Background())
	return &Scheduler{
		store:    store,
		guard:    guard,
		clock:    clk,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		timers:   make(map[int]clockwork.Timer),
		baseCtx:  baseCtx,
		stop:     stop,
	}
}

// Arm registers a one-shot timer firing at the match's reminder time. A
// match already inside or past the lead window is left to the sweep. Arming
// a match that already has a timer replaces it.
func (s *Scheduler) Arm(m model.Match) {
	if m.Status != model.StatusScheduled || m.ReminderSent {
		return
	}

	delay := m.ReminderTime(s.cfg.LeadTime).Sub(s.clock.Now())
	if delay <= 0 {
		return
	}

	s.mu.Lock()
	if old, ok := s.timers[m.ID]; ok {
		old.Stop()
	}
	timer := s.clock.NewTimer(delay)
	s.timers[m.ID] = timer
	s.mu.Unlock()

	s.logger.Debug("reminder armed",
		slog.Int("match_id", m.ID),
		slog.Duration("delay", delay),
	)

	go func() {
		select {
		case <-timer.Chan():
			s.removeTimer(m.ID, timer)
			s.dispatch(s.baseCtx, m.ID)
		case <-s.baseCtx.Done():
		}
	}()
}

// removeTimer drops the registry entry for a fired timer. A replacement armed
// after the fire is left alone.
func (s *Scheduler) removeTimer(matchID int, fired clockwork.Timer) {
	s.mu.Lock()
	if s.timers[matchID] == fired {
		delete(s.timers, matchID)
	}
	s.mu.Unlock()
}

// CancelReminder stops and discards any pending timer for the match. Calling
// it for a match with no timer, or one that already fired, is a no-op.
func (s *Scheduler) CancelReminder(matchID int) {
	s.mu.Lock()
	timer, ok := s.timers[matchID]
	if ok {
		timer.Stop()
		delete(s.timers, matchID)
	}
	s.mu.Unlock()

	if ok {
		s.logger.Debug("reminder cancelled", slog.Int("match_id", matchID))
	}
}

// Run executes the sweep loop until ctx is cancelled, then shuts the
// scheduler down
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("reminder scheduler started",
		slog.Duration("lead_time", s.cfg.LeadTime),
		slog.Duration("sweep_interval", s.cfg.SweepInterval),
	)

	for {
		timer := s.clock.NewTimer(s.cfg.SweepInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.Stop()
			return ctx.Err()
		case <-s.baseCtx.Done():
			timer.Stop()
			return nil
		case <-timer.Chan():
			s.sweep(ctx)
		}
	}
}

// Stop cancels all pending timers and ends the sweep loop
func (s *Scheduler) Stop() {
	s.stop()

	s.mu.Lock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.logger.Info("reminder scheduler stopped")
}

// PendingTimers reports how many timers are currently armed
func (s *Scheduler) PendingTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// sweep scans scheduled matches and dispatches any whose time-to-kickoff is
// inside the tolerance window around the lead time and whose reminder has
// not been sent. An error in one dispatch never aborts the rest.
func (s *Scheduler) sweep(ctx context.Context) {
	matches, err := s.store.LoadMatches(ctx)
	if err != nil {
		s.logger.Error("sweep failed to load matches", slog.Any("error", err))
		return
	}

	now := s.clock.Now()
	lo := s.cfg.LeadTime - s.cfg.Tolerance
	hi := s.cfg.LeadTime + s.cfg.Tolerance

	for _, m := range matches {
		if m.Status != model.StatusScheduled || m.ReminderSent {
			continue
		}
		untilKickoff := m.ScheduledTime.Sub(now)
		if untilKickoff < lo || untilKickoff > hi {
			continue
		}
		s.dispatch(ctx, m.ID)
	}
}

// dispatch sends the reminder for a match. The reminder_sent flag is flipped
// under the matches lock before the notifier runs, so a racing timer and
// sweep fire at most once between them; a notifier failure is logged and the
// match stays marked sent.
func (s *Scheduler) dispatch(ctx context.Context, matchID int) {
	clubs, err := s.store.LoadClubs(ctx)
	if err != nil {
		s.logger.Error("reminder dispatch failed to load clubs",
			slog.Int("match_id", matchID),
			slog.Any("error", err),
		)
		return
	}

	matches, err := s.store.LoadMatches(ctx)
	if err != nil {
		s.logger.Error("reminder dispatch failed to load matches",
			slog.Int("match_id", matchID),
			slog.Any("error", err),
		)
		return
	}
	mi := storage.FindByID(matches, matchID)
	if mi < 0 {
		return
	}

	c1 := storage.FindByID(clubs, matches[mi].Club1ID)
	c2 := storage.FindByID(clubs, matches[mi].Club2ID)
	if c1 < 0 || c2 < 0 {
		// Dangling club reference; drop the reminder without complaint.
		return
	}

	match, ok := s.markSent(ctx, matchID)
	if !ok {
		return
	}

	if err := s.notifier.Notify(ctx, match, clubs[c1], clubs[c2]); err != nil {
		s.logger.Error("reminder delivery failed",
			slog.Int("match_id", matchID),
			slog.Any("error", err),
		)
		return
	}

	s.logger.Info("reminder sent",
		slog.Int("match_id", matchID),
		slog.Time("kickoff", match.ScheduledTime),
	)
}

// markSent re-reads the match under the matches lock and flips reminder_sent
// false -> true. Returns false when the match is gone, no longer scheduled,
// or another path already marked it.
func (s *Scheduler) markSent(ctx context.Context, matchID int) (model.Match, bool) {
	release := s.guard.Acquire(storage.CollectionMatches)
	defer release()

	matches, err := s.store.LoadMatches(ctx)
	if err != nil {
		s.logger.Error("reminder dispatch failed to load matches",
			slog.Int("match_id", matchID),
			slog.Any("error", err),
		)
		return model.Match{}, false
	}

	i := storage.FindByID(matches, matchID)
	if i < 0 {
		return model.Match{}, false
	}
	if matches[i].Status != model.StatusScheduled || matches[i].ReminderSent {
		return model.Match{}, false
	}

	matches[i].ReminderSent = true
	if err := s.store.SaveMatches(ctx, matches); err != nil {
		s.logger.Error("reminder dispatch failed to save matches",
			slog.Int("match_id", matchID),
			slog.Any("error", err),
		)
		return model.Match{}, false
	}
	return matches[i], true
}
