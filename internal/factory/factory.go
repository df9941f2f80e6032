package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/leagueops/leaguekeeper/internal/dependencies/clock"
	"github.com/leagueops/leaguekeeper/internal/notify"
	"github.com/leagueops/leaguekeeper/internal/services/admin"
	"github.com/leagueops/leaguekeeper/internal/services/club"
	"github.com/leagueops/leaguekeeper/internal/services/match"
	"github.com/leagueops/leaguekeeper/internal/services/player"
	"github.com/leagueops/leaguekeeper/internal/services/reminder"
	"github.com/leagueops/leaguekeeper/internal/services/stats"
	"github.com/leagueops/leaguekeeper/internal/services/transfer"
	"github.com/leagueops/leaguekeeper/internal/storage"
	filestorage "github.com/leagueops/leaguekeeper/internal/storage/file"
	"github.com/leagueops/leaguekeeper/internal/storage/memory"
	redisstorage "github.com/leagueops/leaguekeeper/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store
	Guard   *storage.Guard

	// External dependencies
	Clock    clock.Clock
	Notifier notify.Notifier

	// Services
	ClubService     *club.Service
	PlayerService   *player.Service
	TransferService *transfer.Service
	MatchService    *match.Service
	StatsService    *stats.Service
	AdminService    *admin.Service
	Scheduler       *reminder.Scheduler
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("file", "memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// DataDir is the data directory for the file backend
	DataDir string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Reminder holds reminder scheduler timing
	// If zero value, defaults to reminder.DefaultConfig()
	Reminder reminder.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeFile:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = "data"
		}
		fileStore, err := filestorage.New(dataDir, logger)
		if err != nil {
			return nil, err
		}
		store = fileStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'file', 'memory' or 'redis'")
	}

	clk := clock.New()
	notifier := notify.NewLogNotifier(logger)

	reminderCfg := cfg.Reminder
	if reminderCfg.LeadTime == 0 {
		reminderCfg = reminder.DefaultConfig()
	}

	return newWithDependencies(store, clk, notifier, reminderCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, clk clock.Clock, notifier notify.Notifier, reminderCfg reminder.Config, logger *slog.Logger) *App {
	guard := storage.NewGuard()

	scheduler := reminder.New(store, guard, clk, notifier, reminderCfg, logger)

	clubService := club.New(store, guard, logger)
	playerService := player.New(store, guard, logger)
	transferService := transfer.New(store, guard, clk, logger)
	matchService := match.New(store, guard, clk, scheduler, logger)
	statsService := stats.New(store)
	adminService := admin.New(store, guard, clk, logger)

	return &App{
		Storage:         store,
		Guard:           guard,
		Clock:           clk,
		Notifier:        notifier,
		ClubService:     clubService,
		PlayerService:   playerService,
		TransferService: transferService,
		MatchService:    matchService,
		StatsService:    statsService,
		AdminService:    adminService,
		Scheduler:       scheduler,
	}
}
