package paystore

import "errors"

// Sentinel errors shared by every backend so that swapping the durable store
// for the mock never changes the failure shape of a capability call.
var (
	// ErrNotFound reports that the requested record does not exist.
	ErrNotFound = errors.New("paystore: not found")

	// ErrDuplicateEntry reports a uniqueness violation on insert.
	ErrDuplicateEntry = errors.New("paystore: duplicate entry")
)
