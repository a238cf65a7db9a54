package config

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultMigrationsPath = "migrations"
	defaultSessionTTL     = 12 * time.Hour
)

type Config struct {
	TelegramToken  string        `mapstructure:"TELEGRAM_TOKEN"`
	DBDSN          string        `mapstructure:"DB_DSN"`
	Environment    string        `mapstructure:"ENV"`
	APIBaseURL     string        `mapstructure:"API_BASE_URL"`
	MigrationsPath string        `mapstructure:"MIGRATIONS_PATH"`
	SessionSecret  [32]byte      `mapstructure:"SESSION_SECRET"`
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`
}

func Load() (*Config, error) {
	// .env is optional, plain environment variables win when it is absent
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds the config from an arbitrary variable source
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBDSN:          getenv("DB_DSN"),
		TelegramToken:  getenv("TELEGRAM_TOKEN"),
		Environment:    getenv("ENV"),
		APIBaseURL:     strings.TrimRight(getenv("API_BASE_URL"), "/"),
		MigrationsPath: getenv("MIGRATIONS_PATH"),
		SessionTTL:     defaultSessionTTL,
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required but not set")
	}

	secret, err := hex.DecodeString(getenv("SESSION_SECRET"))
	if err != nil || len(secret) != len(cfg.SessionSecret) {
		return nil, fmt.Errorf("SESSION_SECRET must be %d hex-encoded bytes", len(cfg.SessionSecret))
	}
	copy(cfg.SessionSecret[:], secret)

	if raw := getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid SESSION_TTL %q", raw)
		}
		cfg.SessionTTL = ttl
	}

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
