package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded from a .env file in the working directory.
type Config struct {
	ServerAddr string `envconfig:"SERVER_ADDR" default:":8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"user"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"password"`
	DBName     string `envconfig:"DB_NAME" default:"workbenchdb"`

	// RedisAddr enables the cross-node broadcast bridge. Empty means
	// single-node operation with no Redis connection at all.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB"`

	MinIOEndpoint  string `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	MinIOAccessKey string `envconfig:"MINIO_ACCESS_KEY" default:"minioadmin"`
	MinIOSecretKey string `envconfig:"MINIO_SECRET_KEY" default:"minioadmin"`
	MinIOBucket    string `envconfig:"MINIO_BUCKET" default:"workbench-uploads"`
	MinIOUseSSL    bool   `envconfig:"MINIO_USE_SSL"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"dev-only-secret"`

	// TelegramBotToken enables the Telegram broadcast bridge when set.
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `envconfig:"TELEGRAM_CHAT_ID"`

	// TmpDir is where uploads are staged while variants are generated.
	// Empty falls back to the OS temp directory.
	TmpDir string `envconfig:"TMP_DIR"`
}

// Load reads a .env file if present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// DatabaseDSN builds the Postgres connection string for gorm.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
