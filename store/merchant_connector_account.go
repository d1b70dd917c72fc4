package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertMerchantConnectorAccount(ctx context.Context, account *paystore.MerchantConnectorAccount) (*paystore.MerchantConnectorAccount, error) {
	query := `INSERT INTO merchant_connector_account
        (connector_id, merchant_id, connector_name, encrypted_credentials, test_mode, disabled)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, modified_at`

	out := *account
	err := s.db.QueryRowContext(ctx, query,
		account.ConnectorID, account.MerchantID, account.ConnectorName,
		account.EncryptedCredentials, account.TestMode, account.Disabled,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "insert merchant connector account")
	}
	return &out, nil
}

func (s *Store) FindMerchantConnectorAccountByID(ctx context.Context, merchantID, connectorID string) (*paystore.MerchantConnectorAccount, error) {
	query := `SELECT connector_id, merchant_id, connector_name, encrypted_credentials, test_mode, disabled, created_at, modified_at
        FROM merchant_connector_account WHERE merchant_id = $1 AND connector_id = $2`

	a := &paystore.MerchantConnectorAccount{}
	err := s.db.QueryRowContext(ctx, query, merchantID, connectorID).Scan(
		&a.ConnectorID, &a.MerchantID, &a.ConnectorName, &a.EncryptedCredentials,
		&a.TestMode, &a.Disabled, &a.CreatedAt, &a.ModifiedAt,
	)
	if err != nil {
		return nil, mapErr(err, "find merchant connector account")
	}
	return a, nil
}

func (s *Store) ListMerchantConnectorAccounts(ctx context.Context, merchantID string) ([]*paystore.MerchantConnectorAccount, error) {
	query := `SELECT connector_id, merchant_id, connector_name, encrypted_credentials, test_mode, disabled, created_at, modified_at
        FROM merchant_connector_account WHERE merchant_id = $1 ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, merchantID)
	if err != nil {
		return nil, mapErr(err, "list merchant connector accounts")
	}
	defer rows.Close()

	var out []*paystore.MerchantConnectorAccount
	for rows.Next() {
		a := &paystore.MerchantConnectorAccount{}
		if err := rows.Scan(
			&a.ConnectorID, &a.MerchantID, &a.ConnectorName, &a.EncryptedCredentials,
			&a.TestMode, &a.Disabled, &a.CreatedAt, &a.ModifiedAt,
		); err != nil {
			return nil, mapErr(err, "list merchant connector accounts")
		}
		out = append(out, a)
	}
	return out, mapErr(rows.Err(), "list merchant connector accounts")
}
