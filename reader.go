package paystore

import (
	"context"

	"github.com/unkn0wn-root/paystore/kv"
)

// GetAndDeserialize reads the raw bytes stored at key through the facade's
// cache connection and decodes them into T. typeName is used in the
// deserialization diagnostic. A missing key propagates the engine's
// kv.ErrKeyNotFound; no default value is substituted.
func GetAndDeserialize[T any](ctx context.Context, db kv.Accessor, key, typeName string) (T, error) {
	var zero T

	conn, err := db.GetCacheConn()
	if err != nil {
		return zero, &kv.ConnectionError{Cause: err}
	}
	raw, err := conn.Get(ctx, key)
	if err != nil {
		return zero, err
	}

	var v T
	if err := db.CacheCodec().Unmarshal(raw, &v); err != nil {
		return zero, &kv.DeserializationError{TypeName: typeName, Cause: err}
	}
	return v, nil
}
