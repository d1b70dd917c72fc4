package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) CreateEphemeralKey(ctx context.Context, key *paystore.EphemeralKey) (*paystore.EphemeralKey, error) {
	query := `INSERT INTO ephemeral_keys (id, merchant_id, customer_id, secret, expires_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	out := *key
	err := s.db.QueryRowContext(ctx, query,
		key.ID, key.MerchantID, key.CustomerID, key.Secret, key.ExpiresAt,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, mapErr(err, "create ephemeral key")
	}
	return &out, nil
}

func (s *Store) GetEphemeralKey(ctx context.Context, secret string) (*paystore.EphemeralKey, error) {
	// expired keys are treated as absent
	query := `SELECT id, merchant_id, customer_id, secret, created_at, expires_at
        FROM ephemeral_keys WHERE secret = $1 AND expires_at > now()`

	k := &paystore.EphemeralKey{}
	err := s.db.QueryRowContext(ctx, query, secret).Scan(
		&k.ID, &k.MerchantID, &k.CustomerID, &k.Secret, &k.CreatedAt, &k.ExpiresAt,
	)
	if err != nil {
		return nil, mapErr(err, "get ephemeral key")
	}
	return k, nil
}

func (s *Store) DeleteEphemeralKey(ctx context.Context, id string) error {
	query := `DELETE FROM ephemeral_keys WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapErr(err, "delete ephemeral key")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return mapErr(err, "delete ephemeral key")
	}
	if n == 0 {
		return notFound("delete ephemeral key")
	}
	return nil
}
