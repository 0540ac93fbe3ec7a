package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"workbench/backend/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "workbenchdb", cfg.DBName)
	assert.Equal(t, "workbench-uploads", cfg.MinIOBucket)
	assert.Empty(t, cfg.RedisAddr, "redis bridge is off by default")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":3000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123456")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, ":3000", cfg.ServerAddr)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "redis.internal:6379", cfg.RedisAddr)
	assert.Equal(t, int64(-100123456), cfg.TelegramChatID)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := config.Config{
		DBHost: "localhost", DBPort: "5432",
		DBUser: "app", DBPassword: "secret", DBName: "workbenchdb",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=app password=secret dbname=workbenchdb sslmode=disable",
		cfg.DatabaseDSN())
}
