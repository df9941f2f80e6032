package memory

import (
	"context"
	"sync"

	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
//
// Load and save copy the backing slices so callers never share state with
// the store; whole-collection semantics match the file backend.
type Storage struct {
	mu sync.RWMutex

	clubs     []model.Club
	players   []model.Player
	matches   []model.Match
	transfers []model.Transfer
}

// New creates a new in-memory storage instance with all collections empty
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) LoadClubs(ctx context.Context) ([]model.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.clubs), nil
}

func (s *Storage) SaveClubs(ctx context.Context, clubs []model.Club) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clubs = copySlice(clubs)
	return nil
}

func (s *Storage) LoadPlayers(ctx context.Context) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.players), nil
}

func (s *Storage) SavePlayers(ctx context.Context, players []model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = copySlice(players)
	return nil
}

func (s *Storage) LoadMatches(ctx context.Context) ([]model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.matches), nil
}

func (s *Storage) SaveMatches(ctx context.Context, matches []model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = copySlice(matches)
	return nil
}

func (s *Storage) LoadTransfers(ctx context.Context) ([]model.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.transfers), nil
}

func (s *Storage) SaveTransfers(ctx context.Context, transfers []model.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transfers = copySlice(transfers)
	return nil
}

// Close is a no-op for the in-memory backend
func (s *Storage) Close() error {
	return nil
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
