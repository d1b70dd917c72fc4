// Package store implements the durable storage backend: Postgres as the
// system of record plus a Redis connection for the accelerated cache path.
package store

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"

	"github.com/unkn0wn-root/paystore"
	"github.com/unkn0wn-root/paystore/codec"
	"github.com/unkn0wn-root/paystore/kv"
	"github.com/unkn0wn-root/paystore/localcache"
	"github.com/unkn0wn-root/paystore/redis"
)

type Options struct {
	// DSN is the Postgres connection string.
	DSN string

	Redis redis.Config

	// MasterKey is the 32-byte key handed to the encryption collaborator.
	// Never logged, never re-persisted.
	MasterKey []byte

	Codec       codec.Codec      // nil => codec.JSON{}
	Logger      paystore.Logger  // nil => NopLogger
	ConfigCache localcache.Cache // nil => ristretto with defaults

	// MigrationsDir, when non-empty, is applied with goose at startup.
	MigrationsDir string
}

type Store struct {
	db        *sql.DB
	cache     *redis.Conn
	masterKey []byte
	cdc       codec.Codec
	log       paystore.Logger
	cfgCache  localcache.Cache
}

var _ paystore.Storage = (*Store)(nil)

// New opens the database and the cache connection and verifies both, so a
// misconfigured backend fails at startup instead of on first use.
func New(ctx context.Context, opts Options) (*Store, error) {
	if len(opts.MasterKey) != 32 {
		return nil, pkgerrors.Errorf("store: master key must be 32 bytes, got %d", len(opts.MasterKey))
	}

	log := opts.Logger
	if log == nil {
		log = paystore.NopLogger{}
	}

	db, err := sql.Open("postgres", opts.DSN)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "store: open database")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, pkgerrors.Wrap(err, "store: ping database")
	}

	if opts.MigrationsDir != "" {
		if err := Migrate(db, opts.MigrationsDir); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("store: migrations applied", paystore.Fields{"dir": opts.MigrationsDir})
	}

	cache, err := redis.New(ctx, opts.Redis)
	if err != nil {
		_ = db.Close()
		return nil, pkgerrors.Wrap(err, "store: connect cache engine")
	}

	cdc := opts.Codec
	if cdc == nil {
		cdc = codec.JSON{}
	}

	cfgCache := opts.ConfigCache
	if cfgCache == nil {
		cfgCache, err = localcache.NewRistretto(localcache.RistrettoConfig{})
		if err != nil {
			_ = db.Close()
			_ = cache.Close()
			return nil, pkgerrors.Wrap(err, "store: config cache")
		}
	}

	log.Info("store: connected", paystore.Fields{"codec": cdc.Name()})

	return &Store{
		db:        db,
		cache:     cache,
		masterKey: opts.MasterKey,
		cdc:       cdc,
		log:       log,
		cfgCache:  cfgCache,
	}, nil
}

// GetMasterKey exposes the raw key material for the encryption collaborator.
func (s *Store) GetMasterKey() []byte { return s.masterKey }

// GetCacheConn hands out the pooled cache connection. The handle is shared;
// callers never own it.
func (s *Store) GetCacheConn() (kv.Conn, error) {
	if s.cache == nil {
		return nil, pkgerrors.New("store: cache connection not initialized")
	}
	return s.cache, nil
}

func (s *Store) CacheCodec() codec.Codec { return s.cdc }

// SchedulerStorage returns the scheduler-only projection. The projection is
// the same handle behind a narrower interface; duplicating it is free.
func (s *Store) SchedulerStorage() paystore.SchedulerStorage { return s }

func (s *Store) Close() error {
	if s.cfgCache != nil {
		_ = s.cfgCache.Close()
	}
	if s.cache != nil {
		_ = s.cache.Close()
	}
	return s.db.Close()
}
