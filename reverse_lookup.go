package paystore

import "context"

// ReverseLookup maps a secondary identifier (e.g. a connector transaction
// reference) to the primary cache key of the record holding it, so
// accelerated paths can resolve either direction without a relational query.
type ReverseLookup struct {
	LookupID string // secondary identifier
	SKID     string // storage key the identifier resolves to
	PKID     string // primary record identifier
	Source   string
}

type ReverseLookupInterface interface {
	InsertReverseLookup(ctx context.Context, lookup *ReverseLookup) (*ReverseLookup, error)
	GetReverseLookup(ctx context.Context, lookupID string) (*ReverseLookup, error)
}
