package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// StorageType selects the storage backend
type StorageType string

const (
	StorageFile   StorageType = "file"
	StorageMemory StorageType = "memory"
	StorageRedis  StorageType = "redis"
)

// Config is the full server configuration, loaded from the environment
type Config struct {
	Host        string      `env:"HOST" envDefault:""`
	Port        int         `env:"PORT" envDefault:"8080"`
	StorageType StorageType `env:"STORAGE_TYPE" envDefault:"file"`
	DataDir     string      `env:"DATA_DIR" envDefault:"data"`
	RedisURL    string      `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	ReminderLeadTime time.Duration `env:"REMINDER_LEAD_TIME" envDefault:"5m"`
	SweepInterval    time.Duration `env:"SWEEP_INTERVAL" envDefault:"60s"`
	SweepTolerance   time.Duration `env:"SWEEP_TOLERANCE" envDefault:"1m"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from a .env file (if present) and the process
// environment, then validates it
func Load() (Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values no backend can act on
func (c Config) Validate() error {
	switch c.StorageType {
	case StorageFile, StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("unknown storage type %q", c.StorageType)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.ReminderLeadTime <= 0 {
		return fmt.Errorf("reminder lead time must be positive, got %s", c.ReminderLeadTime)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", c.SweepInterval)
	}
	if c.SweepTolerance < 0 {
		return fmt.Errorf("sweep tolerance must not be negative, got %s", c.SweepTolerance)
	}
	return nil
}

// ListenAddr returns the host:port the HTTP server binds to
func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
