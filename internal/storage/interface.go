package storage

import (
	"context"

	"github.com/leagueops/leaguekeeper/internal/model"
)

// Store defines the interface for persisting the four league collections.
//
// Collections are loaded and saved whole: every mutation is a
// load-modify-save cycle and the backing store is the source of truth. Load
// of a missing or unreadable collection returns an empty slice, never an
// error; corruption is treated as "no data" at this boundary.
type Store interface {
	LoadClubs(ctx context.Context) ([]model.Club, error)
	SaveClubs(ctx context.Context, clubs []model.Club) error

	LoadPlayers(ctx context.Context) ([]model.Player, error)
	SavePlayers(ctx context.Context, players []model.Player) error

	LoadMatches(ctx context.Context) ([]model.Match, error)
	SaveMatches(ctx context.Context, matches []model.Match) error

	LoadTransfers(ctx context.Context) ([]model.Transfer, error)
	SaveTransfers(ctx context.Context, transfers []model.Transfer) error

	Close() error
}
