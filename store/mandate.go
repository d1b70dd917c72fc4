package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertMandate(ctx context.Context, mandate *paystore.Mandate) (*paystore.Mandate, error) {
	query := `INSERT INTO mandates (mandate_id, merchant_id, customer_id, payment_method_id, status, max_amount, currency)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at`

	out := *mandate
	err := s.db.QueryRowContext(ctx, query,
		mandate.MandateID, mandate.MerchantID, mandate.CustomerID,
		mandate.PaymentMethodID, mandate.Status, mandate.MaxAmount, mandate.Currency,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, mapErr(err, "insert mandate")
	}
	return &out, nil
}

func (s *Store) FindMandateByID(ctx context.Context, merchantID, mandateID string) (*paystore.Mandate, error) {
	query := `SELECT mandate_id, merchant_id, customer_id, payment_method_id, status, max_amount, currency, created_at
        FROM mandates WHERE merchant_id = $1 AND mandate_id = $2`

	m := &paystore.Mandate{}
	err := s.db.QueryRowContext(ctx, query, merchantID, mandateID).Scan(
		&m.MandateID, &m.MerchantID, &m.CustomerID, &m.PaymentMethodID,
		&m.Status, &m.MaxAmount, &m.Currency, &m.CreatedAt,
	)
	if err != nil {
		return nil, mapErr(err, "find mandate")
	}
	return m, nil
}

func (s *Store) UpdateMandateStatus(ctx context.Context, merchantID, mandateID string, status paystore.MandateStatus) (*paystore.Mandate, error) {
	query := `UPDATE mandates SET status = $3
        WHERE merchant_id = $1 AND mandate_id = $2
        RETURNING mandate_id, merchant_id, customer_id, payment_method_id, status, max_amount, currency, created_at`

	m := &paystore.Mandate{}
	err := s.db.QueryRowContext(ctx, query, merchantID, mandateID, status).Scan(
		&m.MandateID, &m.MerchantID, &m.CustomerID, &m.PaymentMethodID,
		&m.Status, &m.MaxAmount, &m.Currency, &m.CreatedAt,
	)
	if err != nil {
		return nil, mapErr(err, "update mandate status")
	}
	return m, nil
}
