package player

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/storage"
)

// Service manages the player collection
type Service struct {
	store  storage.Store
	guard  *storage.Guard
	logger *slog.Logger
}

// New creates a new player service
func New(store storage.Store, guard *storage.Guard, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

// Create registers a new player. Player names are unique case-insensitively;
// clubID may be nil for a free agent, otherwise the club must exist.
func (s *Service) Create(ctx context.Context, name string, value int64, position model.Position, age int, clubID *int) (model.Player, error) {
	if value < 0 {
		return model.Player{}, model.ErrNegativeValue
	}
	if _, err := model.ParsePosition(string(position)); err != nil {
		return model.Player{}, err
	}
	if age < model.MinPlayerAge || age > model.MaxPlayerAge {
		return model.Player{}, model.ErrAgeOutOfRange
	}

	release := s.guard.Acquire(storage.CollectionClubs, storage.CollectionPlayers)
	defer release()

	if clubID != nil {
		clubs, err := s.store.LoadClubs(ctx)
		if err != nil {
			return model.Player{}, err
		}
		if storage.FindByID(clubs, *clubID) < 0 {
			return model.Player{}, model.ErrClubNotFound
		}
	}

	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return model.Player{}, err
	}
	if nameTaken(players, name, 0) {
		return model.Player{}, model.ErrDuplicatePlayerName
	}

	player := model.Player{
		ID:       storage.NextID(players),
		Name:     name,
		Value:    value,
		Position: position,
		Age:      age,
		ClubID:   clubID,
	}
	players = append(players, player)

	if err := s.store.SavePlayers(ctx, players); err != nil {
		return model.Player{}, err
	}

	s.logger.Info("player created",
		slog.Int("player_id", player.ID),
		slog.String("name", player.Name),
		slog.String("position", string(player.Position)),
	)
	return player, nil
}

// Get retrieves a player by ID
func (s *Service) Get(ctx context.Context, id int) (model.Player, error) {
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return model.Player{}, err
	}
	i := storage.FindByID(players, id)
	if i < 0 {
		return model.Player{}, model.ErrPlayerNotFound
	}
	return players[i], nil
}

// List returns players sorted by value descending. A non-nil clubID limits
// the result to that club's roster.
func (s *Service) List(ctx context.Context, clubID *int) ([]model.Player, error) {
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		if clubID != nil && (p.ClubID == nil || *p.ClubID != *clubID) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out, nil
}

// FreeAgents returns players without a club, sorted by value descending
func (s *Service) FreeAgents(ctx context.Context) ([]model.Player, error) {
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Player, 0)
	for _, p := range players {
		if p.IsFreeAgent() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out, nil
}

// Rename changes a player's name, keeping names unique case-insensitively
func (s *Service) Rename(ctx context.Context, id int, newName string) (model.Player, error) {
	release := s.guard.Acquire(storage.CollectionPlayers)
	defer release()

	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return model.Player{}, err
	}

	i := storage.FindByID(players, id)
	if i < 0 {
		return model.Player{}, model.ErrPlayerNotFound
	}
	if nameTaken(players, newName, id) {
		return model.Player{}, model.ErrDuplicatePlayerName
	}

	players[i].Name = newName
	if err := s.store.SavePlayers(ctx, players); err != nil {
		return model.Player{}, err
	}

	s.logger.Info("player renamed",
		slog.Int("player_id", id),
		slog.String("name", newName),
	)
	return players[i], nil
}

// SetValue replaces a player's market value
func (s *Service) SetValue(ctx context.Context, id int, value int64) (model.Player, error) {
	if value < 0 {
		return model.Player{}, model.ErrNegativeValue
	}

	release := s.guard.Acquire(storage.CollectionPlayers)
	defer release()

	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return model.Player{}, err
	}

	i := storage.FindByID(players, id)
	if i < 0 {
		return model.Player{}, model.ErrPlayerNotFound
	}

	players[i].Value = value
	if err := s.store.SavePlayers(ctx, players); err != nil {
		return model.Player{}, err
	}

	s.logger.Info("player value updated",
		slog.Int("player_id", id),
		slog.Int64("value", value),
	)
	return players[i], nil
}

// SetAge replaces a player's age
func (s *Service) SetAge(ctx context.Context, id int, age int) (model.Player, error) {
	if age < model.MinPlayerAge || age > model.MaxPlayerAge {
		return model.Player{}, model.ErrAgeOutOfRange
	}

	release := s.guard.Acquire(storage.CollectionPlayers)
	defer release()

	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return model.Player{}, err
	}

	i := storage.FindByID(players, id)
	if i < 0 {
		return model.Player{}, model.ErrPlayerNotFound
	}

	players[i].Age = age
	if err := s.store.SavePlayers(ctx, players); err != nil {
		return model.Player{}, err
	}

	s.logger.Info("player age updated",
		slog.Int("player_id", id),
		slog.Int("age", age),
	)
	return players[i], nil
}

func nameTaken(players []model.Player, name string, exceptID int) bool {
	for _, p := range players {
		if p.ID != exceptID && strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}
