package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertRefund(ctx context.Context, refund *paystore.Refund) (*paystore.Refund, error) {
	query := `INSERT INTO refunds (refund_id, payment_id, merchant_id, amount, currency, status, reason)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, modified_at`

	out := *refund
	err := s.db.QueryRowContext(ctx, query,
		refund.RefundID, refund.PaymentID, refund.MerchantID,
		refund.Amount, refund.Currency, refund.Status, refund.Reason,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "insert refund")
	}
	return &out, nil
}

func (s *Store) FindRefundByID(ctx context.Context, merchantID, refundID string) (*paystore.Refund, error) {
	query := `SELECT refund_id, payment_id, merchant_id, amount, currency, status, reason, created_at, modified_at
        FROM refunds WHERE merchant_id = $1 AND refund_id = $2`

	r := &paystore.Refund{}
	err := s.db.QueryRowContext(ctx, query, merchantID, refundID).Scan(
		&r.RefundID, &r.PaymentID, &r.MerchantID, &r.Amount, &r.Currency,
		&r.Status, &r.Reason, &r.CreatedAt, &r.ModifiedAt,
	)
	if err != nil {
		return nil, mapErr(err, "find refund")
	}
	return r, nil
}

func (s *Store) UpdateRefundStatus(ctx context.Context, merchantID, refundID string, status paystore.RefundStatus) (*paystore.Refund, error) {
	query := `UPDATE refunds SET status = $3, modified_at = now()
        WHERE merchant_id = $1 AND refund_id = $2
        RETURNING refund_id, payment_id, merchant_id, amount, currency, status, reason, created_at, modified_at`

	r := &paystore.Refund{}
	err := s.db.QueryRowContext(ctx, query, merchantID, refundID, status).Scan(
		&r.RefundID, &r.PaymentID, &r.MerchantID, &r.Amount, &r.Currency,
		&r.Status, &r.Reason, &r.CreatedAt, &r.ModifiedAt,
	)
	if err != nil {
		return nil, mapErr(err, "update refund status")
	}
	return r, nil
}

func (s *Store) ListRefundsByPaymentID(ctx context.Context, merchantID, paymentID string) ([]*paystore.Refund, error) {
	query := `SELECT refund_id, payment_id, merchant_id, amount, currency, status, reason, created_at, modified_at
        FROM refunds WHERE merchant_id = $1 AND payment_id = $2 ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, merchantID, paymentID)
	if err != nil {
		return nil, mapErr(err, "list refunds")
	}
	defer rows.Close()

	var out []*paystore.Refund
	for rows.Next() {
		r := &paystore.Refund{}
		if err := rows.Scan(
			&r.RefundID, &r.PaymentID, &r.MerchantID, &r.Amount, &r.Currency,
			&r.Status, &r.Reason, &r.CreatedAt, &r.ModifiedAt,
		); err != nil {
			return nil, mapErr(err, "list refunds")
		}
		out = append(out, r)
	}
	return out, mapErr(rows.Err(), "list refunds")
}
