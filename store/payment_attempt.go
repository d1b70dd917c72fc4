package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertPaymentAttempt(ctx context.Context, attempt *paystore.PaymentAttempt) (*paystore.PaymentAttempt, error) {
	query := `INSERT INTO payment_attempt
        (attempt_id, payment_id, merchant_id, status, amount, currency, connector_name, error_message)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at, modified_at`

	out := *attempt
	err := s.db.QueryRowContext(ctx, query,
		attempt.AttemptID, attempt.PaymentID, attempt.MerchantID, attempt.Status,
		attempt.Amount, attempt.Currency, attempt.ConnectorName, attempt.ErrorMessage,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "insert payment attempt")
	}
	return &out, nil
}

func (s *Store) FindPaymentAttemptByID(ctx context.Context, merchantID, attemptID string) (*paystore.PaymentAttempt, error) {
	query := `SELECT attempt_id, payment_id, merchant_id, status, amount, currency, connector_name, error_message, created_at, modified_at
        FROM payment_attempt WHERE merchant_id = $1 AND attempt_id = $2`

	a := &paystore.PaymentAttempt{}
	err := s.db.QueryRowContext(ctx, query, merchantID, attemptID).Scan(
		&a.AttemptID, &a.PaymentID, &a.MerchantID, &a.Status, &a.Amount,
		&a.Currency, &a.ConnectorName, &a.ErrorMessage, &a.CreatedAt, &a.ModifiedAt,
	)
	if err != nil {
		return nil, mapErr(err, "find payment attempt")
	}
	return a, nil
}

func (s *Store) UpdatePaymentAttempt(ctx context.Context, attempt *paystore.PaymentAttempt) (*paystore.PaymentAttempt, error) {
	query := `UPDATE payment_attempt
        SET status = $3, amount = $4, connector_name = $5, error_message = $6, modified_at = now()
        WHERE merchant_id = $1 AND attempt_id = $2
        RETURNING created_at, modified_at`

	out := *attempt
	err := s.db.QueryRowContext(ctx, query,
		attempt.MerchantID, attempt.AttemptID, attempt.Status,
		attempt.Amount, attempt.ConnectorName, attempt.ErrorMessage,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "update payment attempt")
	}
	return &out, nil
}
