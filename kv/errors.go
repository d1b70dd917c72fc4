package kv

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is the engine's miss signal. Conn implementations translate
// their native miss (e.g. redis.Nil) into this sentinel so that callers see
// the same shape regardless of backend. The dispatcher never synthesizes it.
var ErrKeyNotFound = errors.New("kv: key not found")

// ErrUnexpectedResult is returned when a Result extractor does not match the
// operation that produced it. This is a programming error at the call site,
// not a recoverable condition.
var ErrUnexpectedResult = errors.New("kv: result variant does not match requested operation")

// ConnectionError wraps a failure to acquire the backend's cache connection.
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("kv: cache connection unavailable: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// SerializationError wraps a failure to encode a caller-supplied value.
// This indicates a caller bug; retrying cannot succeed.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("kv: value not serializable: %v", e.Cause)
}

func (e *SerializationError) Unwrap() error { return e.Cause }

// DeserializationError wraps a failure to decode stored bytes into the type
// requested by the caller. TypeName names the requested type for diagnostics.
type DeserializationError struct {
	TypeName string
	Cause    error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("kv: stored value does not deserialize into %s: %v", e.TypeName, e.Cause)
}

func (e *DeserializationError) Unwrap() error { return e.Cause }
