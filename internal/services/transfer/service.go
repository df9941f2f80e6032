package transfer

import (
	"context"
	"log/slog"
	"sort"

	"github.com/leagueops/leaguekeeper/internal/dependencies/clock"
	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/storage"
)

// Service records player movements between clubs and keeps the ledger
type Service struct {
	store  storage.Store
	guard  *storage.Guard
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new transfer service
func New(store storage.Store, guard *storage.Guard, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		guard:  guard,
		clock:  clk,
		logger: logger,
	}
}

// Transfer moves a player to a destination club for a fee. The destination
// club's budget is debited; the player's previous club, if any, is credited.
// All three collections are updated together or not at all.
func (s *Service) Transfer(ctx context.Context, playerID, toClubID int, fee int64) (model.Transfer, error) {
	if fee < 0 {
		return model.Transfer{}, model.ErrNegativeFee
	}

	release := s.guard.Acquire(storage.CollectionClubs, storage.CollectionPlayers, storage.CollectionTransfers)
	defer release()

	clubs, err := s.store.LoadClubs(ctx)
	if err != nil {
		return model.Transfer{}, err
	}
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return model.Transfer{}, err
	}
	transfers, err := s.store.LoadTransfers(ctx)
	if err != nil {
		return model.Transfer{}, err
	}

	pi := storage.FindByID(players, playerID)
	if pi < 0 {
		return model.Transfer{}, model.ErrPlayerNotFound
	}
	di := storage.FindByID(clubs, toClubID)
	if di < 0 {
		return model.Transfer{}, model.ErrClubNotFound
	}
	if clubs[di].Budget < fee {
		return model.Transfer{}, model.ErrInsufficientBudget
	}

	fromClubID := players[pi].ClubID

	clubs[di].Budget -= fee
	if fromClubID != nil {
		if si := storage.FindByID(clubs, *fromClubID); si >= 0 {
			clubs[si].Budget += fee
		}
	}

	dest := toClubID
	players[pi].ClubID = &dest
	players[pi].TransferCount++

	record := model.Transfer{
		ID:         storage.NextID(transfers),
		PlayerID:   playerID,
		FromClubID: fromClubID,
		ToClubID:   toClubID,
		Fee:        fee,
		Timestamp:  s.clock.Now(),
	}
	transfers = append(transfers, record)

	if err := s.store.SaveClubs(ctx, clubs); err != nil {
		return model.Transfer{}, err
	}
	if err := s.store.SavePlayers(ctx, players); err != nil {
		return model.Transfer{}, err
	}
	if err := s.store.SaveTransfers(ctx, transfers); err != nil {
		return model.Transfer{}, err
	}

	s.logger.Info("player transferred",
		slog.Int("transfer_id", record.ID),
		slog.Int("player_id", playerID),
		slog.Int("to_club_id", toClubID),
		slog.Int64("fee", fee),
	)
	return record, nil
}

// Release turns a player into a free agent. No budget moves and no ledger
// entry is written.
func (s *Service) Release(ctx context.Context, playerID int) (model.Player, error) {
	release := s.guard.Acquire(storage.CollectionPlayers)
	defer release()

	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return model.Player{}, err
	}

	i := storage.FindByID(players, playerID)
	if i < 0 {
		return model.Player{}, model.ErrPlayerNotFound
	}
	if players[i].IsFreeAgent() {
		return model.Player{}, model.ErrAlreadyFreeAgent
	}

	players[i].ClubID = nil
	if err := s.store.SavePlayers(ctx, players); err != nil {
		return model.Player{}, err
	}

	s.logger.Info("player released",
		slog.Int("player_id", playerID),
	)
	return players[i], nil
}

// History returns all transfers for a player, most recent first
func (s *Service) History(ctx context.Context, playerID int) ([]model.Transfer, error) {
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if storage.FindByID(players, playerID) < 0 {
		return nil, model.ErrPlayerNotFound
	}

	transfers, err := s.store.LoadTransfers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Transfer, 0)
	for _, t := range transfers {
		if t.PlayerID == playerID {
			out = append(out, t)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// Recent returns the most recent transfers across the league, up to limit
func (s *Service) Recent(ctx context.Context, limit int) ([]model.Transfer, error) {
	transfers, err := s.store.LoadTransfers(ctx)
	if err != nil {
		return nil, err
	}

	sortNewestFirst(transfers)
	if limit > 0 && len(transfers) > limit {
		transfers = transfers[:limit]
	}
	return transfers, nil
}

func sortNewestFirst(transfers []model.Transfer) {
	sort.SliceStable(transfers, func(i, j int) bool {
		return transfers[i].Timestamp.After(transfers[j].Timestamp)
	})
}
