// Package kv implements the cache-operation dispatcher: a single entry point
// translating a closed set of cache operations into key-value engine calls.
//
// Components:
//   - Conn: the engine contract (hash get/set/scan, conditional writes, TTL).
//   - Operation[S]: the closed operation set; S is the caller's payload type.
//   - Result[T]: mirrors the operation one-to-one; extracting the wrong
//     variant is ErrUnexpectedResult.
//   - Dispatch: acquires the backend's connection, applies the fixed TTL to
//     every write, and tags the result to match the request.
//
// The cache is a best-effort accelerant, never a source of truth. The only
// per-key concurrency primitive exposed is the engine's atomic set-if-absent;
// idempotent-write guarantees at higher layers are built on it alone.
package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/unkn0wn-root/paystore/codec"
	"github.com/unkn0wn-root/paystore/internal/kvmetrics"
)

// TTL is applied to every write issued through Dispatch. There is no per-call
// override; this bounds growth of ephemeral payment-flow state in the engine.
const TTL = 15 * time.Minute

// Conn is the key-value engine contract consumed by the dispatcher. Writes
// take the expiry to apply; implementations must be safe for concurrent use.
// A missing key or hash field is reported as ErrKeyNotFound.
type Conn interface {
	// Get returns the raw bytes stored at key.
	Get(ctx context.Context, key string) ([]byte, error)

	// SetHashField writes one hash field and applies ttl to the key.
	SetHashField(ctx context.Context, key, field string, value []byte, ttl time.Duration) error

	// GetHashField returns the raw bytes stored at one hash field.
	GetHashField(ctx context.Context, key, field string) ([]byte, error)

	// ScanHashFields returns the values of all hash fields matching pattern,
	// in the engine's native iteration order. No match yields an empty slice.
	ScanHashFields(ctx context.Context, key, pattern string) ([][]byte, error)

	// SetIfAbsent atomically writes the whole key only if it does not exist,
	// applying ttl. Returns true if the write created the key.
	SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)

	// SetHashFieldIfAbsent atomically writes one hash field only if it is
	// absent, applying ttl to the key on success. Returns true on creation.
	SetHashFieldIfAbsent(ctx context.Context, key, field string, value []byte, ttl time.Duration) (bool, error)
}

// Accessor is the slice of a storage backend the dispatcher needs: a pooled
// cache connection handle and the payload codec the backend was built with.
type Accessor interface {
	GetCacheConn() (Conn, error)
	CacheCodec() codec.Codec
}

// Existence reports the outcome of a set-if-absent write.
type Existence uint8

const (
	// Created means the key or field was absent and has been written.
	Created Existence = iota + 1
	// AlreadyExists means the key or field was present; nothing was written.
	AlreadyExists
)

func existence(created bool) Existence {
	if created {
		return Created
	}
	return AlreadyExists
}

type opKind uint8

const (
	opHashSet opKind = iota + 1
	opSetIfAbsent
	opHashSetIfAbsent
	opGet
	opScan
)

func (k opKind) String() string {
	switch k {
	case opHashSet:
		return "hash_set"
	case opSetIfAbsent:
		return "set_if_absent"
	case opHashSetIfAbsent:
		return "hash_set_if_absent"
	case opGet:
		return "get"
	case opScan:
		return "scan"
	default:
		return "unknown"
	}
}

// Operation is one member of the closed cache-operation set. Construct with
// HashSet, SetIfAbsent, HashSetIfAbsent, Get or Scan; the zero value is not
// dispatchable.
type Operation[S any] struct {
	kind     opKind
	field    string
	pattern  string
	strValue string
	value    S
}

// HashSet writes one hash field as an already-serialized string.
func HashSet[S any](field, value string) Operation[S] {
	return Operation[S]{kind: opHashSet, field: field, strValue: value}
}

// SetIfAbsent writes the whole key only if it does not exist.
func SetIfAbsent[S any](value S) Operation[S] {
	return Operation[S]{kind: opSetIfAbsent, value: value}
}

// HashSetIfAbsent writes one hash field only if it is absent.
func HashSetIfAbsent[S any](field string, value S) Operation[S] {
	return Operation[S]{kind: opHashSetIfAbsent, field: field, value: value}
}

// Get reads one hash field.
func Get[S any](field string) Operation[S] {
	return Operation[S]{kind: opGet, field: field}
}

// Scan enumerates hash fields matching pattern.
func Scan[S any](pattern string) Operation[S] {
	return Operation[S]{kind: opScan, pattern: pattern}
}

// Result carries the outcome of a dispatched operation, tagged with the
// operation that produced it. Extractors return ErrUnexpectedResult when the
// tag does not match.
type Result[T any] struct {
	kind  opKind
	get   T
	scan  []T
	exist Existence
}

// Get extracts the value read by a Get operation.
func (r Result[T]) Get() (T, error) {
	if r.kind != opGet {
		var zero T
		return zero, ErrUnexpectedResult
	}
	return r.get, nil
}

// HashSet confirms a HashSet operation completed.
func (r Result[T]) HashSet() error {
	if r.kind != opHashSet {
		return ErrUnexpectedResult
	}
	return nil
}

// SetIfAbsent extracts the existence reply of a SetIfAbsent operation.
func (r Result[T]) SetIfAbsent() (Existence, error) {
	if r.kind != opSetIfAbsent {
		return 0, ErrUnexpectedResult
	}
	return r.exist, nil
}

// HashSetIfAbsent extracts the existence reply of a HashSetIfAbsent operation.
func (r Result[T]) HashSetIfAbsent() (Existence, error) {
	if r.kind != opHashSetIfAbsent {
		return 0, ErrUnexpectedResult
	}
	return r.exist, nil
}

// Scan extracts the values enumerated by a Scan operation. Order follows the
// engine's iteration order and is not stable across calls.
func (r Result[T]) Scan() ([]T, error) {
	if r.kind != opScan {
		return nil, ErrUnexpectedResult
	}
	return r.scan, nil
}

// Dispatch runs one cache operation against the accessor's engine connection.
// T is the type Get/Scan results decode into; S is the payload type of
// conditional writes. Every write applies TTL. Get on missing data propagates
// the engine's ErrKeyNotFound untouched.
func Dispatch[T any, S any](ctx context.Context, s Accessor, op Operation[S], key string) (Result[T], error) {
	var zero Result[T]

	conn, err := s.GetCacheConn()
	if err != nil {
		kvmetrics.Record(op.kind.String(), kvmetrics.StatusConnectionError)
		return zero, &ConnectionError{Cause: err}
	}

	res, err := dispatch[T](ctx, conn, s.CacheCodec(), op, key)
	kvmetrics.Record(op.kind.String(), status(err))
	return res, err
}

func dispatch[T any, S any](ctx context.Context, conn Conn, cdc codec.Codec, op Operation[S], key string) (Result[T], error) {
	var zero Result[T]

	switch op.kind {
	case opHashSet:
		if err := conn.SetHashField(ctx, key, op.field, []byte(op.strValue), TTL); err != nil {
			return zero, err
		}
		return Result[T]{kind: opHashSet}, nil

	case opGet:
		raw, err := conn.GetHashField(ctx, key, op.field)
		if err != nil {
			return zero, err
		}
		v, err := decode[T](cdc, raw)
		if err != nil {
			return zero, err
		}
		return Result[T]{kind: opGet, get: v}, nil

	case opScan:
		raws, err := conn.ScanHashFields(ctx, key, op.pattern)
		if err != nil {
			return zero, err
		}
		out := make([]T, 0, len(raws))
		for _, raw := range raws {
			v, err := decode[T](cdc, raw)
			if err != nil {
				return zero, err
			}
			out = append(out, v)
		}
		return Result[T]{kind: opScan, scan: out}, nil

	case opHashSetIfAbsent:
		payload, err := cdc.Marshal(op.value)
		if err != nil {
			return zero, &SerializationError{Cause: err}
		}
		created, err := conn.SetHashFieldIfAbsent(ctx, key, op.field, payload, TTL)
		if err != nil {
			return zero, err
		}
		return Result[T]{kind: opHashSetIfAbsent, exist: existence(created)}, nil

	case opSetIfAbsent:
		payload, err := cdc.Marshal(op.value)
		if err != nil {
			return zero, &SerializationError{Cause: err}
		}
		created, err := conn.SetIfAbsent(ctx, key, payload, TTL)
		if err != nil {
			return zero, err
		}
		return Result[T]{kind: opSetIfAbsent, exist: existence(created)}, nil

	default:
		return zero, fmt.Errorf("kv: operation not constructed via package constructors")
	}
}

func decode[T any](cdc codec.Codec, raw []byte) (T, error) {
	var v T
	if err := cdc.Unmarshal(raw, &v); err != nil {
		return v, &DeserializationError{TypeName: typeName[T](), Cause: err}
	}
	return v, nil
}

func typeName[T any]() string {
	var v T
	return fmt.Sprintf("%T", v)
}

func status(err error) string {
	if err == nil {
		return kvmetrics.StatusOK
	}
	switch err.(type) {
	case *SerializationError:
		return kvmetrics.StatusSerializationError
	case *DeserializationError:
		return kvmetrics.StatusDeserializationError
	default:
		return kvmetrics.StatusEngineError
	}
}
