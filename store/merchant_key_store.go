package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertMerchantKeyStore(ctx context.Context, keyStore *paystore.MerchantKeyStore) (*paystore.MerchantKeyStore, error) {
	query := `INSERT INTO merchant_key_store (merchant_id, encrypted_key)
        VALUES ($1, $2)
        RETURNING created_at`

	out := *keyStore
	err := s.db.QueryRowContext(ctx, query, keyStore.MerchantID, keyStore.EncryptedKey).Scan(&out.CreatedAt)
	if err != nil {
		return nil, mapErr(err, "insert merchant key store")
	}
	return &out, nil
}

func (s *Store) GetMerchantKeyStore(ctx context.Context, merchantID string) (*paystore.MerchantKeyStore, error) {
	query := `SELECT merchant_id, encrypted_key, created_at
        FROM merchant_key_store WHERE merchant_id = $1`

	k := &paystore.MerchantKeyStore{}
	err := s.db.QueryRowContext(ctx, query, merchantID).Scan(&k.MerchantID, &k.EncryptedKey, &k.CreatedAt)
	if err != nil {
		return nil, mapErr(err, "get merchant key store")
	}
	return k, nil
}
