package paystore

import (
	"context"
	"time"
)

// EphemeralKey is a short-lived client-side credential scoped to one
// customer. Expired keys are treated as absent.
type EphemeralKey struct {
	ID         string
	MerchantID string
	CustomerID string
	Secret     string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

type EphemeralKeyInterface interface {
	CreateEphemeralKey(ctx context.Context, key *EphemeralKey) (*EphemeralKey, error)
	GetEphemeralKey(ctx context.Context, secret string) (*EphemeralKey, error)
	DeleteEphemeralKey(ctx context.Context, id string) error
}
