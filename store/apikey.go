package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertAPIKey(ctx context.Context, key *paystore.APIKey) (*paystore.APIKey, error) {
	query := `INSERT INTO api_keys (key_id, merchant_id, name, hashed_key, prefix, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	out := *key
	err := s.db.QueryRowContext(ctx, query,
		key.KeyID, key.MerchantID, key.Name, key.HashedKey, key.Prefix, key.ExpiresAt,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, mapErr(err, "insert api key")
	}
	return &out, nil
}

func (s *Store) FindAPIKeyByID(ctx context.Context, keyID string) (*paystore.APIKey, error) {
	query := `SELECT key_id, merchant_id, name, hashed_key, prefix, created_at, expires_at, last_used_at, revoked
        FROM api_keys WHERE key_id = $1`

	k := &paystore.APIKey{}
	err := s.db.QueryRowContext(ctx, query, keyID).Scan(
		&k.KeyID, &k.MerchantID, &k.Name, &k.HashedKey, &k.Prefix,
		&k.CreatedAt, &k.ExpiresAt, &k.LastUsedAt, &k.Revoked,
	)
	if err != nil {
		return nil, mapErr(err, "find api key")
	}
	return k, nil
}

func (s *Store) RevokeAPIKey(ctx context.Context, merchantID, keyID string) error {
	query := `UPDATE api_keys SET revoked = true WHERE merchant_id = $1 AND key_id = $2`

	result, err := s.db.ExecContext(ctx, query, merchantID, keyID)
	if err != nil {
		return mapErr(err, "revoke api key")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return mapErr(err, "revoke api key")
	}
	if n == 0 {
		return notFound("revoke api key")
	}
	return nil
}
