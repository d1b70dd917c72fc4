// Package config loads the process-level persistence configuration from the
// environment. A .env file is honored outside production, matching the
// deployment convention of the wider platform.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// BackendKind is the three-valued backend selector, consumed once at process
// startup. postgres_test runs the durable code path against a test database;
// mock is the pure in-memory double.
type BackendKind string

const (
	BackendPostgres     BackendKind = "postgres"
	BackendPostgresTest BackendKind = "postgres_test"
	BackendMock         BackendKind = "mock"
)

type Config struct {
	Backend BackendKind `env:"PAYSTORE_BACKEND" envDefault:"postgres"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"paystore"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// MasterKeyHex is the hex-encoded 32-byte master key handed to the
	// encryption collaborator. Required for the durable backends.
	MasterKeyHex string `env:"PAYSTORE_MASTER_KEY"`

	// RunMigrations applies pending schema migrations at startup.
	RunMigrations bool `env:"PAYSTORE_RUN_MIGRATIONS" envDefault:"false"`

	ConfigCacheTTL time.Duration `env:"PAYSTORE_CONFIG_CACHE_TTL" envDefault:"10m"`
}

// Load reads the environment (and .env outside production) into a Config and
// validates it.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		// missing .env is fine; explicit env vars win either way
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendPostgres, BackendPostgresTest, BackendMock:
	default:
		return fmt.Errorf("config: unknown backend %q (want postgres, postgres_test or mock)", c.Backend)
	}
	if c.Backend != BackendMock {
		if _, err := c.MasterKey(); err != nil {
			return err
		}
	}
	return nil
}

// MasterKey decodes and length-checks the configured master key.
func (c *Config) MasterKey() ([]byte, error) {
	if c.MasterKeyHex == "" {
		return nil, fmt.Errorf("config: PAYSTORE_MASTER_KEY is required for backend %q", c.Backend)
	}
	key, err := hex.DecodeString(c.MasterKeyHex)
	if err != nil {
		return nil, fmt.Errorf("config: PAYSTORE_MASTER_KEY is not valid hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("config: PAYSTORE_MASTER_KEY must decode to 32 bytes, got %d", len(key))
	}
	return key, nil
}

// DSN assembles the Postgres connection string. The postgres_test backend
// points at a separate database; the code path is otherwise identical.
func (c *Config) DSN() string {
	name := c.DBName
	if c.Backend == BackendPostgresTest {
		name += "_test"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, name, c.DBSSLMode,
	)
}
