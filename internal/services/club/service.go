package club

import (
	"context"
	"log/slog"
	"strings"

	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/storage"
)

// Service manages the club collection
type Service struct {
	store  storage.Store
	guard  *storage.Guard
	logger *slog.Logger
}

// New creates a new club service
func New(store storage.Store, guard *storage.Guard, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

// Create registers a new club. Club names are unique case-insensitively.
func (s *Service) Create(ctx context.Context, name string, budget int64) (model.Club, error) {
	if budget < 0 {
		return model.Club{}, model.ErrNegativeBudget
	}

	release := s.guard.Acquire(storage.CollectionClubs)
	defer release()

	clubs, err := s.store.LoadClubs(ctx)
	if err != nil {
		return model.Club{}, err
	}

	if nameTaken(clubs, name, 0) {
		return model.Club{}, model.ErrDuplicateClubName
	}

	club := model.Club{
		ID:     storage.NextID(clubs),
		Name:   name,
		Budget: budget,
	}
	clubs = append(clubs, club)

	if err := s.store.SaveClubs(ctx, clubs); err != nil {
		return model.Club{}, err
	}

	s.logger.Info("club created",
		slog.Int("club_id", club.ID),
		slog.String("name", club.Name),
		slog.Int64("budget", club.Budget),
	)
	return club, nil
}

// Get retrieves a club by ID
func (s *Service) Get(ctx context.Context, id int) (model.Club, error) {
	clubs, err := s.store.LoadClubs(ctx)
	if err != nil {
		return model.Club{}, err
	}
	i := storage.FindByID(clubs, id)
	if i < 0 {
		return model.Club{}, model.ErrClubNotFound
	}
	return clubs[i], nil
}

// List returns all clubs in stored order
func (s *Service) List(ctx context.Context) ([]model.Club, error) {
	return s.store.LoadClubs(ctx)
}

// Roster returns the players whose club reference matches the club
func (s *Service) Roster(ctx context.Context, id int) ([]model.Player, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	roster := make([]model.Player, 0)
	for _, p := range players {
		if p.ClubID != nil && *p.ClubID == id {
			roster = append(roster, p)
		}
	}
	return roster, nil
}

// Rename changes a club's name, keeping names unique case-insensitively
func (s *Service) Rename(ctx context.Context, id int, newName string) (model.Club, error) {
	release := s.guard.Acquire(storage.CollectionClubs)
	defer release()

	clubs, err := s.store.LoadClubs(ctx)
	if err != nil {
		return model.Club{}, err
	}

	i := storage.FindByID(clubs, id)
	if i < 0 {
		return model.Club{}, model.ErrClubNotFound
	}
	if nameTaken(clubs, newName, id) {
		return model.Club{}, model.ErrDuplicateClubName
	}

	clubs[i].Name = newName
	if err := s.store.SaveClubs(ctx, clubs); err != nil {
		return model.Club{}, err
	}

	s.logger.Info("club renamed",
		slog.Int("club_id", id),
		slog.String("name", newName),
	)
	return clubs[i], nil
}

// SetBudget replaces a club's budget
func (s *Service) SetBudget(ctx context.Context, id int, budget int64) (model.Club, error) {
	if budget < 0 {
		return model.Club{}, model.ErrNegativeBudget
	}

	release := s.guard.Acquire(storage.CollectionClubs)
	defer release()

	clubs, err := s.store.LoadClubs(ctx)
	if err != nil {
		return model.Club{}, err
	}

	i := storage.FindByID(clubs, id)
	if i < 0 {
		return model.Club{}, model.ErrClubNotFound
	}

	clubs[i].Budget = budget
	if err := s.store.SaveClubs(ctx, clubs); err != nil {
		return model.Club{}, err
	}

	s.logger.Info("club budget updated",
		slog.Int("club_id", id),
		slog.Int64("budget", budget),
	)
	return clubs[i], nil
}

// Delete removes a club and cascade-deletes its roster
func (s *Service) Delete(ctx context.Context, id int) error {
	release := s.guard.Acquire(storage.CollectionClubs, storage.CollectionPlayers)
	defer release()

	clubs, err := s.store.LoadClubs(ctx)
	if err != nil {
		return err
	}
	if storage.FindByID(clubs, id) < 0 {
		return model.ErrClubNotFound
	}

	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return err
	}

	remaining := make([]model.Player, 0, len(players))
	removed := 0
	for _, p := range players {
		if p.ClubID != nil && *p.ClubID == id {
			removed++
			continue
		}
		remaining = append(remaining, p)
	}

	if err := s.store.SavePlayers(ctx, remaining); err != nil {
		return err
	}
	if err := s.store.SaveClubs(ctx, storage.RemoveByID(clubs, id)); err != nil {
		return err
	}

	s.logger.Info("club deleted",
		slog.Int("club_id", id),
		slog.Int("players_removed", removed),
	)
	return nil
}

// nameTaken reports whether another club (id != exceptID) already uses the
// name, ignoring case
func nameTaken(clubs []model.Club, name string, exceptID int) bool {
	for _, c := range clubs {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
