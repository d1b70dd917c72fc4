// Package codec defines the serialization contract for cache payloads.
//
// Implementations must be safe for concurrent use. The cache layer treats
// payloads as opaque bytes; the codec chosen for a backend must stay stable
// for the lifetime of the keyspace it writes, or old entries will fail to
// decode.
package codec

// Codec encodes and decodes values to and from []byte for storage.
type Codec interface {
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v, which must be a non-nil pointer.
	Unmarshal(data []byte, v any) error

	// Name identifies the wire format (e.g. "json"); used in diagnostics.
	Name() string
}
