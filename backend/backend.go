// Package backend constructs a paystore.Storage from configuration. The
// selection happens exactly once at process startup; everything downstream
// works against the interface and never inspects the concrete backend.
package backend

import (
	"context"
	"fmt"

	"github.com/unkn0wn-root/paystore"
	"github.com/unkn0wn-root/paystore/config"
	"github.com/unkn0wn-root/paystore/localcache"
	"github.com/unkn0wn-root/paystore/mock"
	"github.com/unkn0wn-root/paystore/redis"
	"github.com/unkn0wn-root/paystore/store"
)

// DefaultMigrationsDir is where the goose migration files ship relative to
// the repository root.
const DefaultMigrationsDir = "store/migrations"

func New(ctx context.Context, cfg *config.Config, log paystore.Logger) (paystore.Storage, error) {
	switch cfg.Backend {
	case config.BackendMock:
		return mock.New(), nil

	case config.BackendPostgres, config.BackendPostgresTest:
		masterKey, err := cfg.MasterKey()
		if err != nil {
			return nil, err
		}

		cfgCache, err := localcache.NewRistretto(localcache.RistrettoConfig{TTL: cfg.ConfigCacheTTL})
		if err != nil {
			return nil, err
		}

		opts := store.Options{
			DSN: cfg.DSN(),
			Redis: redis.Config{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			},
			MasterKey:   masterKey,
			Logger:      log,
			ConfigCache: cfgCache,
		}
		if cfg.RunMigrations {
			opts.MigrationsDir = DefaultMigrationsDir
		}
		return store.New(ctx, opts)

	default:
		return nil, fmt.Errorf("backend: unknown backend %q", cfg.Backend)
	}
}
