package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface. Each
// collection is stored whole as one JSON array value, preserving the
// load-modify-save semantics of the file backend.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) LoadClubs(ctx context.Context) ([]model.Club, error) {
	return load[model.Club](ctx, s, "clubs")
}

func (s *Storage) SaveClubs(ctx context.Context, clubs []model.Club) error {
	return save(ctx, s, "clubs", clubs)
}

func (s *Storage) LoadPlayers(ctx context.Context) ([]model.Player, error) {
	return load[model.Player](ctx, s, "players")
}

func (s *Storage) SavePlayers(ctx context.Context, players []model.Player) error {
	return save(ctx, s, "players", players)
}

func (s *Storage) LoadMatches(ctx context.Context) ([]model.Match, error) {
	return load[model.Match](ctx, s, "matches")
}

func (s *Storage) SaveMatches(ctx context.Context, matches []model.Match) error {
	return save(ctx, s, "matches", matches)
}

func (s *Storage) LoadTransfers(ctx context.Context) ([]model.Transfer, error) {
	return load[model.Transfer](ctx, s, "transfers")
}

func (s *Storage) SaveTransfers(ctx context.Context, transfers []model.Transfer) error {
	return save(ctx, s, "transfers", transfers)
}

// load fetches a collection value. A missing key or malformed value yields an
// empty collection; connection failures still propagate.
func load[T any](ctx context.Context, s *Storage, name string) ([]T, error) {
	data, err := s.client.Get(ctx, collectionKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []T{}, nil
		}
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func save[T any](ctx context.Context, s *Storage, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, collectionKey(name), data, 0).Err()
}
