package localcache

import (
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"
)

type Ristretto struct {
	c   *rc.Cache
	ttl time.Duration
}

var _ Cache = (*Ristretto)(nil)

type RistrettoConfig struct {
	NumCounters int64         // 0 => 10_000
	MaxCost     int64         // bytes; 0 => 16 MiB
	TTL         time.Duration // per-entry; 0 => 10m
}

func NewRistretto(cfg RistrettoConfig) (*Ristretto, error) {
	if cfg.NumCounters == 0 {
		cfg.NumCounters = 10_000
	}
	if cfg.MaxCost == 0 {
		cfg.MaxCost = 16 << 20
	}
	if cfg.TTL == 0 {
		cfg.TTL = 10 * time.Minute
	}
	if cfg.NumCounters < 0 || cfg.MaxCost < 0 {
		return nil, errors.New("localcache: invalid ristretto config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto{c: c, ttl: cfg.TTL}, nil
}

func (r *Ristretto) Get(key string) ([]byte, bool) {
	v, ok := r.c.Get(key)
	if !ok {
		return nil, false
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		r.c.Del(key)
		return nil, false
	}
	return b, true
}

func (r *Ristretto) Set(key string, value []byte) {
	r.c.SetWithTTL(key, value, int64(len(value)), r.ttl)
}

func (r *Ristretto) Del(key string) { r.c.Del(key) }

func (r *Ristretto) Close() error {
	r.c.Wait()
	r.c.Close()
	return nil
}

// Wait blocks until buffered writes are applied. Only needed by tests.
func (r *Ristretto) Wait() { r.c.Wait() }
