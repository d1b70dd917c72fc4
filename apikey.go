package paystore

import (
	"context"
	"time"
)

type APIKey struct {
	KeyID       string
	MerchantID  string
	Name        string
	HashedKey   string
	Prefix      string
	CreatedAt   time.Time
	ExpiresAt   *time.Time
	LastUsedAt  *time.Time
	Revoked     bool
}

type APIKeyInterface interface {
	InsertAPIKey(ctx context.Context, key *APIKey) (*APIKey, error)
	FindAPIKeyByID(ctx context.Context, keyID string) (*APIKey, error)

	// RevokeAPIKey marks the key unusable. Revoking an already revoked key
	// is a no-op, not an error.
	RevokeAPIKey(ctx context.Context, merchantID, keyID string) error
}
