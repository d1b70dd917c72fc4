package mock

import (
	"context"
	"path"
	"sync"
	"time"

	"github.com/unkn0wn-root/paystore/kv"
)

// memKV is a process-local key-value engine with redis-compatible behavior
// for the subset of operations the dispatcher uses: plain keys, hashes,
// conditional writes and key-level expiry.
type memKV struct {
	mu     sync.Mutex
	plain  map[string]memEntry
	hashes map[string]*memHash
}

type memEntry struct {
	v   []byte
	exp time.Time
}

type memHash struct {
	fields map[string][]byte
	exp    time.Time
}

var _ kv.Conn = (*memKV)(nil)

func newMemKV() *memKV {
	return &memKV{
		plain:  make(map[string]memEntry),
		hashes: make(map[string]*memHash),
	}
}

func (c *memKV) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.plain[key]
	if !ok || expired(e.exp) {
		delete(c.plain, key)
		return nil, kv.ErrKeyNotFound
	}
	return clone(e.v), nil
}

func (c *memKV) SetHashField(ctx context.Context, key, field string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := c.liveHash(key)
	if h == nil {
		h = &memHash{fields: make(map[string][]byte)}
		c.hashes[key] = h
	}
	h.fields[field] = clone(value)
	h.exp = time.Now().Add(ttl)
	return nil
}

func (c *memKV) GetHashField(ctx context.Context, key, field string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := c.liveHash(key)
	if h == nil {
		return nil, kv.ErrKeyNotFound
	}
	v, ok := h.fields[field]
	if !ok {
		return nil, kv.ErrKeyNotFound
	}
	return clone(v), nil
}

func (c *memKV) ScanHashFields(ctx context.Context, key, pattern string) ([][]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := c.liveHash(key)
	if h == nil {
		return nil, nil
	}
	var out [][]byte
	for f, v := range h.fields {
		ok, err := path.Match(pattern, f)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, clone(v))
		}
	}
	return out, nil
}

func (c *memKV) SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.plain[key]; ok && !expired(e.exp) {
		return false, nil
	}
	c.plain[key] = memEntry{v: clone(value), exp: time.Now().Add(ttl)}
	return true, nil
}

func (c *memKV) SetHashFieldIfAbsent(ctx context.Context, key, field string, value []byte, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := c.liveHash(key)
	if h == nil {
		h = &memHash{fields: make(map[string][]byte)}
		c.hashes[key] = h
	}
	if _, ok := h.fields[field]; ok {
		return false, nil
	}
	h.fields[field] = clone(value)
	h.exp = time.Now().Add(ttl)
	return true, nil
}

// liveHash returns the hash at key, dropping it first if expired.
// Caller holds the lock.
func (c *memKV) liveHash(key string) *memHash {
	h, ok := c.hashes[key]
	if !ok {
		return nil
	}
	if expired(h.exp) {
		delete(c.hashes, key)
		return nil
	}
	return h
}

func expired(t time.Time) bool { return !t.IsZero() && time.Now().After(t) }

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
