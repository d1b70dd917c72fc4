package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

// Runtime configs are read on hot paths and change rarely, so reads go
// through the in-process cache first. Writes refresh or drop the cached
// entry; the database stays the source of truth.

func (s *Store) InsertConfig(ctx context.Context, entry *paystore.ConfigEntry) (*paystore.ConfigEntry, error) {
	query := `INSERT INTO configs (key, value) VALUES ($1, $2)`

	if _, err := s.db.ExecContext(ctx, query, entry.Key, entry.Value); err != nil {
		return nil, mapErr(err, "insert config")
	}
	s.cacheConfig(entry)
	return entry, nil
}

func (s *Store) FindConfigByKey(ctx context.Context, key string) (*paystore.ConfigEntry, error) {
	if raw, ok := s.cfgCache.Get(configCacheKey(key)); ok {
		entry := &paystore.ConfigEntry{}
		if err := s.cdc.Unmarshal(raw, entry); err == nil {
			return entry, nil
		}
		// undecodable cache entry; fall through to the database
		s.cfgCache.Del(configCacheKey(key))
	}

	query := `SELECT key, value FROM configs WHERE key = $1`

	entry := &paystore.ConfigEntry{}
	if err := s.db.QueryRowContext(ctx, query, key).Scan(&entry.Key, &entry.Value); err != nil {
		return nil, mapErr(err, "find config")
	}
	s.cacheConfig(entry)
	return entry, nil
}

func (s *Store) UpdateConfigByKey(ctx context.Context, entry *paystore.ConfigEntry) (*paystore.ConfigEntry, error) {
	query := `UPDATE configs SET value = $2 WHERE key = $1`

	result, err := s.db.ExecContext(ctx, query, entry.Key, entry.Value)
	if err != nil {
		return nil, mapErr(err, "update config")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, mapErr(err, "update config")
	}
	if n == 0 {
		return nil, notFound("update config")
	}
	s.cacheConfig(entry)
	return entry, nil
}

func (s *Store) DeleteConfigByKey(ctx context.Context, key string) error {
	query := `DELETE FROM configs WHERE key = $1`

	result, err := s.db.ExecContext(ctx, query, key)
	if err != nil {
		return mapErr(err, "delete config")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return mapErr(err, "delete config")
	}
	if n == 0 {
		return notFound("delete config")
	}
	s.cfgCache.Del(configCacheKey(key))
	return nil
}

func (s *Store) cacheConfig(entry *paystore.ConfigEntry) {
	raw, err := s.cdc.Marshal(entry)
	if err != nil {
		s.log.Warn("store: config not cacheable", paystore.Fields{"key": entry.Key})
		return
	}
	s.cfgCache.Set(configCacheKey(entry.Key), raw)
}

func configCacheKey(key string) string { return "cfg:" + key }
