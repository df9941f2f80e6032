package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/leagueops/leaguekeeper/internal/dependencies/clock"
	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/storage"
)

// Snapshot is a point-in-time copy of every collection
type Snapshot struct {
	TakenAt   time.Time        `json:"taken_at"`
	Clubs     []model.Club     `json:"clubs"`
	Players   []model.Player   `json:"players"`
	Matches   []model.Match    `json:"matches"`
	Transfers []model.Transfer `json:"transfers"`
}

// Service provides whole-league maintenance operations
type Service struct {
	store  storage.Store
	guard  *storage.Guard
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new admin service
func New(store storage.Store, guard *storage.Guard, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		guard:  guard,
		clock:  clk,
		logger: logger,
	}
}

// Take copies all four collections under their locks so the snapshot is a
// consistent cut
func (s *Service) Take(ctx context.Context) (Snapshot, error) {
	release := s.guard.Acquire(
		storage.CollectionClubs,
		storage.CollectionPlayers,
		storage.CollectionMatches,
		storage.CollectionTransfers,
	)
	defer release()

	clubs, err := s.store.LoadClubs(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	matches, err := s.store.LoadMatches(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	transfers, err := s.store.LoadTransfers(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{
		TakenAt:   s.clock.Now(),
		Clubs:     clubs,
		Players:   players,
		Matches:   matches,
		Transfers: transfers,
	}

	s.logger.Info("snapshot taken",
		slog.Int("clubs", len(clubs)),
		slog.Int("players", len(players)),
		slog.Int("matches", len(matches)),
		slog.Int("transfers", len(transfers)),
	)
	return snapshot, nil
}

// Restore overwrites every collection with the snapshot's contents
func (s *Service) Restore(ctx context.Context, snapshot Snapshot) error {
	release := s.guard.Acquire(
		storage.CollectionClubs,
		storage.CollectionPlayers,
		storage.CollectionMatches,
		storage.CollectionTransfers,
	)
	defer release()

	if err := s.store.SaveClubs(ctx, snapshot.Clubs); err != nil {
		return err
	}
	if err := s.store.SavePlayers(ctx, snapshot.Players); err != nil {
		return err
	}
	if err := s.store.SaveMatches(ctx, snapshot.Matches); err != nil {
		return err
	}
	if err := s.store.SaveTransfers(ctx, snapshot.Transfers); err != nil {
		return err
	}

	s.logger.Info("snapshot restored",
		slog.Time("taken_at", snapshot.TakenAt),
	)
	return nil
}

// Reset empties every collection
func (s *Service) Reset(ctx context.Context) error {
	release := s.guard.Acquire(
		storage.CollectionClubs,
		storage.CollectionPlayers,
		storage.CollectionMatches,
		storage.CollectionTransfers,
	)
	defer release()

	if err := s.store.SaveClubs(ctx, []model.Club{}); err != nil {
		return err
	}
	if err := s.store.SavePlayers(ctx, []model.Player{}); err != nil {
		return err
	}
	if err := s.store.SaveMatches(ctx, []model.Match{}); err != nil {
		return err
	}
	if err := s.store.SaveTransfers(ctx, []model.Transfer{}); err != nil {
		return err
	}

	s.logger.Info("league reset")
	return nil
}
