package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorageFile, cfg.StorageType)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 5*time.Minute, cfg.ReminderLeadTime)
	assert.Equal(t, 60*time.Second, cfg.SweepInterval)
	assert.Equal(t, time.Minute, cfg.SweepTolerance)
	assert.Equal(t, ":8080", cfg.ListenAddr())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379")
	t.Setenv("REMINDER_LEAD_TIME", "10m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr())
	assert.Equal(t, StorageRedis, cfg.StorageType)
	assert.Equal(t, "redis://cache:6379", cfg.RedisURL)
	assert.Equal(t, 10*time.Minute, cfg.ReminderLeadTime)
}

func TestLoadRejectsUnknownStorageType(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown storage type")
}

func TestValidateRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := Load()
	assert.ErrorContains(t, err, "out of range")
}

func TestValidateRejectsNonPositiveLeadTime(t *testing.T) {
	t.Setenv("REMINDER_LEAD_TIME", "0s")

	_, err := Load()
	assert.ErrorContains(t, err, "lead time")
}
