package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leagueops/leaguekeeper/internal/model"
	"github.com/leagueops/leaguekeeper/internal/storage"
)

// Collection filenames under the data directory
const (
	clubsFile     = "clubs.json"
	playersFile   = "players.json"
	matchesFile   = "matches.json"
	transfersFile = "transfers.json"
)

// Storage is a flat-file implementation of the storage interface. Each
// collection is one JSON array file under the data directory.
type Storage struct {
	dir    string
	logger *slog.Logger
}

// New creates a file storage rooted at dir, creating the directory and
// seeding empty collection files if they do not exist
func New(dir string, logger *slog.Logger) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Storage{dir: dir, logger: logger}
	for _, name := range []string{clubsFile, playersFile, matchesFile, transfersFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := writeFileAtomic(path, []byte("[]")); err != nil {
				return nil, fmt.Errorf("seed %s: %w", name, err)
			}
		}
	}
	return s, nil
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) LoadClubs(ctx context.Context) ([]model.Club, error) {
	return load[model.Club](s, clubsFile)
}

func (s *Storage) SaveClubs(ctx context.Context, clubs []model.Club) error {
	return save(s, clubsFile, clubs)
}

func (s *Storage) LoadPlayers(ctx context.Context) ([]model.Player, error) {
	return load[model.Player](s, playersFile)
}

func (s *Storage) SavePlayers(ctx context.Context, players []model.Player) error {
	return save(s, playersFile, players)
}

func (s *Storage) LoadMatches(ctx context.Context) ([]model.Match, error) {
	return load[model.Match](s, matchesFile)
}

func (s *Storage) SaveMatches(ctx context.Context, matches []model.Match) error {
	return save(s, matchesFile, matches)
}

func (s *Storage) LoadTransfers(ctx context.Context) ([]model.Transfer, error) {
	return load[model.Transfer](s, transfersFile)
}

func (s *Storage) SaveTransfers(ctx context.Context, transfers []model.Transfer) error {
	return save(s, transfersFile, transfers)
}

// Close is a no-op for the file backend
func (s *Storage) Close() error {
	return nil
}

// load reads a collection file. A missing or malformed file yields an empty
// collection: corruption is absorbed here and never surfaced to callers.
func load[T any](s *Storage, name string) ([]T, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("unreadable collection file, treating as empty",
				slog.String("file", name),
				slog.String("error", err.Error()),
			)
		}
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("corrupt collection file, treating as empty",
			slog.String("file", name),
			slog.String("error", err.Error()),
		)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// save overwrites a collection file via a temp file and rename, so a reader
// never observes a partially written collection
func save[T any](s *Storage, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := writeFileAtomic(filepath.Join(s.dir, name), data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
