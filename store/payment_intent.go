package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertPaymentIntent(ctx context.Context, intent *paystore.PaymentIntent) (*paystore.PaymentIntent, error) {
	query := `INSERT INTO payment_intent
        (payment_id, merchant_id, status, amount, amount_captured, currency, customer_id, description, active_attempt_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at, modified_at`

	out := *intent
	err := s.db.QueryRowContext(ctx, query,
		intent.PaymentID, intent.MerchantID, intent.Status, intent.Amount, intent.AmountCaptured,
		intent.Currency, intent.CustomerID, intent.Description, intent.ActiveAttemptID,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "insert payment intent")
	}
	return &out, nil
}

func (s *Store) FindPaymentIntentByID(ctx context.Context, merchantID, paymentID string) (*paystore.PaymentIntent, error) {
	query := `SELECT payment_id, merchant_id, status, amount, amount_captured, currency, customer_id, description, active_attempt_id, created_at, modified_at
        FROM payment_intent WHERE merchant_id = $1 AND payment_id = $2`

	pi := &paystore.PaymentIntent{}
	err := s.db.QueryRowContext(ctx, query, merchantID, paymentID).Scan(
		&pi.PaymentID, &pi.MerchantID, &pi.Status, &pi.Amount, &pi.AmountCaptured,
		&pi.Currency, &pi.CustomerID, &pi.Description, &pi.ActiveAttemptID,
		&pi.CreatedAt, &pi.ModifiedAt,
	)
	if err != nil {
		return nil, mapErr(err, "find payment intent")
	}
	return pi, nil
}

func (s *Store) UpdatePaymentIntent(ctx context.Context, intent *paystore.PaymentIntent) (*paystore.PaymentIntent, error) {
	query := `UPDATE payment_intent
        SET status = $3, amount = $4, amount_captured = $5, description = $6, active_attempt_id = $7, modified_at = now()
        WHERE merchant_id = $1 AND payment_id = $2
        RETURNING created_at, modified_at`

	out := *intent
	err := s.db.QueryRowContext(ctx, query,
		intent.MerchantID, intent.PaymentID, intent.Status, intent.Amount,
		intent.AmountCaptured, intent.Description, intent.ActiveAttemptID,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "update payment intent")
	}
	return &out, nil
}
