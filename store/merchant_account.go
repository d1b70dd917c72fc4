package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertMerchantAccount(ctx context.Context, account *paystore.MerchantAccount) (*paystore.MerchantAccount, error) {
	query := `INSERT INTO merchant_account (merchant_id, merchant_name, return_url, public_key, storage_model)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, modified_at`

	out := *account
	err := s.db.QueryRowContext(ctx, query,
		account.MerchantID, account.MerchantName, account.ReturnURL,
		account.PublicKey, account.StorageModel,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "insert merchant account")
	}
	return &out, nil
}

func (s *Store) FindMerchantAccountByID(ctx context.Context, merchantID string) (*paystore.MerchantAccount, error) {
	query := `SELECT merchant_id, merchant_name, return_url, public_key, storage_model, created_at, modified_at
        FROM merchant_account WHERE merchant_id = $1`

	m := &paystore.MerchantAccount{}
	err := s.db.QueryRowContext(ctx, query, merchantID).Scan(
		&m.MerchantID, &m.MerchantName, &m.ReturnURL, &m.PublicKey,
		&m.StorageModel, &m.CreatedAt, &m.ModifiedAt,
	)
	if err != nil {
		return nil, mapErr(err, "find merchant account")
	}
	return m, nil
}

func (s *Store) UpdateMerchantAccount(ctx context.Context, account *paystore.MerchantAccount) (*paystore.MerchantAccount, error) {
	query := `UPDATE merchant_account
        SET merchant_name = $2, return_url = $3, public_key = $4, storage_model = $5, modified_at = now()
        WHERE merchant_id = $1
        RETURNING created_at, modified_at`

	out := *account
	err := s.db.QueryRowContext(ctx, query,
		account.MerchantID, account.MerchantName, account.ReturnURL,
		account.PublicKey, account.StorageModel,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "update merchant account")
	}
	return &out, nil
}
