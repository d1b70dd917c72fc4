package localcache

import (
	"context"
	"time"

	bc "github.com/allegro/bigcache/v3"
)

// BigCache adapter. BigCache has no per-entry TTL; entries age out with the
// configured life window, which is acceptable for config-style data.
type BigCache struct {
	c *bc.BigCache
}

var _ Cache = (*BigCache)(nil)

type BigCacheConfig struct {
	LifeWindow         time.Duration // 0 => 10m
	HardMaxCacheSizeMB int           // 0 = unlimited
}

func NewBigCache(cfg BigCacheConfig) (*BigCache, error) {
	if cfg.LifeWindow == 0 {
		cfg.LifeWindow = 10 * time.Minute
	}
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &BigCache{c: c}, nil
}

func (b *BigCache) Get(key string) ([]byte, bool) {
	v, err := b.c.Get(key)
	if err != nil {
		return nil, false
	}
	return v, true
}

func (b *BigCache) Set(key string, value []byte) { _ = b.c.Set(key, value) }

func (b *BigCache) Del(key string) { _ = b.c.Delete(key) }

func (b *BigCache) Close() error { return b.c.Close() }
