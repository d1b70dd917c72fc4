// Package localcache provides small in-process byte caches used to front hot,
// rarely-changing entities (runtime configs) on the durable backend.
//
// These caches are best-effort: a miss or an evicted entry only costs a trip
// to the durable store. They are never consulted for correctness.
package localcache

// Cache is a minimal in-process byte cache. Implementations must be safe for
// concurrent use and may evict entries at any time.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Del(key string)
	Close() error
}
