package match

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/leagueops/leaguekeeper/internal/dependencies/clock"
	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/storage"
)

// ReminderArmer is the scheduler hook the registry drives: newly created
// matches get a timer armed, matches entering a terminal status get any
// pending timer cancelled.
type ReminderArmer interface {
	Arm(m model.Match)
	CancelReminder(matchID int)
}

// Service manages the match collection and its reminder lifecycle hooks
type Service struct {
	store  storage.Store
	guard  *storage.Guard
	clock  clock.Clock
	armer  ReminderArmer
	logger *slog.Logger
}

// New creates a new match service. armer may be nil when no reminder
// scheduler is running (e.g. read-only tooling).
func New(store storage.Store, guard *storage.Guard, clk clock.Clock, armer ReminderArmer, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		guard:  guard,
		clock:  clk,
		armer:  armer,
		logger: logger,
	}
}

// Create schedules a match between two distinct existing clubs at a future
// time and hands it to the reminder scheduler
func (s *Service) Create(ctx context.Context, club1ID, club2ID int, scheduledTime time.Time) (model.Match, error) {
	if club1ID == club2ID {
		return model.Match{}, model.ErrSelfMatch
	}
	if !scheduledTime.After(s.clock.Now()) {
		return model.Match{}, model.ErrPastSchedule
	}

	release := s.guard.Acquire(storage.CollectionClubs, storage.CollectionMatches)
	defer release()

	clubs, err := s.store.LoadClubs(ctx)
	if err != nil {
		return model.Match{}, err
	}
	if storage.FindByID(clubs, club1ID) < 0 || storage.FindByID(clubs, club2ID) < 0 {
		return model.Match{}, model.ErrClubNotFound
	}

	matches, err := s.store.LoadMatches(ctx)
	if err != nil {
		return model.Match{}, err
	}

	match := model.Match{
		ID:            storage.NextID(matches),
		Club1ID:       club1ID,
		Club2ID:       club2ID,
		ScheduledTime: scheduledTime,
		Status:        model.StatusScheduled,
	}
	matches = append(matches, match)

	if err := s.store.SaveMatches(ctx, matches); err != nil {
		return model.Match{}, err
	}

	if s.armer != nil {
		s.armer.Arm(match)
	}

	s.logger.Info("match created",
		slog.Int("match_id", match.ID),
		slog.Int("club1_id", club1ID),
		slog.Int("club2_id", club2ID),
		slog.Time("scheduled_time", scheduledTime),
	)
	return match, nil
}

// Get retrieves a match by ID
func (s *Service) Get(ctx context.Context, id int) (model.Match, error) {
	matches, err := s.store.LoadMatches(ctx)
	if err != nil {
		return model.Match{}, err
	}
	i := storage.FindByID(matches, id)
	if i < 0 {
		return model.Match{}, model.ErrMatchNotFound
	}
	return matches[i], nil
}

// List returns matches sorted by scheduled time. A non-empty status limits
// the result to matches in that status.
func (s *Service) List(ctx context.Context, status model.MatchStatus) ([]model.Match, error) {
	matches, err := s.store.LoadMatches(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledTime.Before(out[j].ScheduledTime)
	})
	return out, nil
}

// UpdateStatus moves a match to a new status. Transitions out of a terminal
// status are rejected; a timer armed for the match is cancelled when the new
// status is terminal.
func (s *Service) UpdateStatus(ctx context.Context, id int, status model.MatchStatus) (model.Match, error) {
	parsed, err := model.ParseMatchStatus(string(status))
	if err != nil {
		return model.Match{}, err
	}

	release := s.guard.Acquire(storage.CollectionMatches)
	defer release()

	matches, err := s.store.LoadMatches(ctx)
	if err != nil {
		return model.Match{}, err
	}

	i := storage.FindByID(matches, id)
	if i < 0 {
		return model.Match{}, model.ErrMatchNotFound
	}
	// Cancellation is reachable from any status, everything else only from a
	// non-terminal status.
	if parsed == model.StatusCancelled {
		if matches[i].Status == model.StatusCancelled {
			return model.Match{}, model.ErrAlreadyCancelled
		}
	} else if matches[i].Status.IsTerminal() {
		return model.Match{}, model.ErrTerminalStatus
	}

	matches[i].Status = parsed
	if err := s.store.SaveMatches(ctx, matches); err != nil {
		return model.Match{}, err
	}

	if parsed.IsTerminal() && s.armer != nil {
		s.armer.CancelReminder(id)
	}

	s.logger.Info("match status updated",
		slog.Int("match_id", id),
		slog.String("status", string(parsed)),
	)
	return matches[i], nil
}

// Cancel moves a match to cancelled. Fails if it is already cancelled.
func (s *Service) Cancel(ctx context.Context, id int) (model.Match, error) {
	return s.UpdateStatus(ctx, id, model.StatusCancelled)
}

// Upcoming returns scheduled matches with a kickoff after now, soonest first
func (s *Service) Upcoming(ctx context.Context) ([]model.Match, error) {
	matches, err := s.List(ctx, model.StatusScheduled)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if m.ScheduledTime.After(now) {
			out = append(out, m)
		}
	}
	return out, nil
}
