// Package redis implements the kv engine contract on top of go-redis.
//
// The client is pooled and owned by whoever constructed it; this package only
// issues commands. Timeouts are enforced by the client configuration and
// surface as ordinary command errors.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/paystore/kv"
)

var ErrNilClient = errors.New("redis: nil client")

type Conn struct {
	rdb goredis.UniversalClient
}

var _ kv.Conn = (*Conn)(nil)

type Config struct {
	Addr     string
	Password string
	DB       int

	DialTimeout  time.Duration // 0 => 5s
	ReadTimeout  time.Duration // 0 => 3s
	WriteTimeout time.Duration // 0 => 3s
	PoolSize     int           // 0 => go-redis default
}

// New builds a client from cfg and verifies connectivity with a ping, so a
// misconfigured engine fails at startup rather than on first use.
func New(ctx context.Context, cfg Config) (*Conn, error) {
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 3 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 3 * time.Second
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return &Conn{rdb: rdb}, nil
}

// NewWithClient wraps an existing client. The caller keeps ownership.
func NewWithClient(client goredis.UniversalClient) (*Conn, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	return &Conn{rdb: client}, nil
}

func (c *Conn) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, kv.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (c *Conn) SetHashField(ctx context.Context, key, field string, value []byte, ttl time.Duration) error {
	// HSET and EXPIRE in one round trip; the key-level TTL covers all fields.
	_, err := c.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key, field, value)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

func (c *Conn) GetHashField(ctx context.Context, key, field string) ([]byte, error) {
	b, err := c.rdb.HGet(ctx, key, field).Bytes()
	if err == goredis.Nil {
		return nil, kv.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (c *Conn) ScanHashFields(ctx context.Context, key, pattern string) ([][]byte, error) {
	var out [][]byte
	var cursor uint64
	for {
		// HSCAN returns alternating field/value entries.
		pairs, next, err := c.rdb.HScan(ctx, key, cursor, pattern, 0).Result()
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(pairs); i += 2 {
			out = append(out, []byte(pairs[i]))
		}
		if next == 0 {
			return out, nil
		}
		cursor = next
	}
}

func (c *Conn) SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, key, value, ttl).Result()
}

func (c *Conn) SetHashFieldIfAbsent(ctx context.Context, key, field string, value []byte, ttl time.Duration) (bool, error) {
	created, err := c.rdb.HSetNX(ctx, key, field, value).Result()
	if err != nil {
		return false, err
	}
	if created {
		if err := c.rdb.Expire(ctx, key, ttl).Err(); err != nil {
			return true, err
		}
	}
	return created, nil
}

// Close releases the underlying client. Safe to call multiple times.
func (c *Conn) Close() error {
	if err := c.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
		return err
	}
	return nil
}
