package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertDispute(ctx context.Context, dispute *paystore.Dispute) (*paystore.Dispute, error) {
	query := `INSERT INTO disputes (dispute_id, payment_id, merchant_id, amount, currency, status, connector_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, modified_at`

	out := *dispute
	err := s.db.QueryRowContext(ctx, query,
		dispute.DisputeID, dispute.PaymentID, dispute.MerchantID,
		dispute.Amount, dispute.Currency, dispute.Status, dispute.ConnectorID,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "insert dispute")
	}
	return &out, nil
}

func (s *Store) FindDisputeByID(ctx context.Context, disputeID string) (*paystore.Dispute, error) {
	query := `SELECT dispute_id, payment_id, merchant_id, amount, currency, status, connector_id, created_at, modified_at
        FROM disputes WHERE dispute_id = $1`

	d := &paystore.Dispute{}
	err := s.db.QueryRowContext(ctx, query, disputeID).Scan(
		&d.DisputeID, &d.PaymentID, &d.MerchantID, &d.Amount, &d.Currency,
		&d.Status, &d.ConnectorID, &d.CreatedAt, &d.ModifiedAt,
	)
	if err != nil {
		return nil, mapErr(err, "find dispute")
	}
	return d, nil
}

func (s *Store) UpdateDisputeStatus(ctx context.Context, disputeID string, status paystore.DisputeStatus) (*paystore.Dispute, error) {
	query := `UPDATE disputes SET status = $2, modified_at = now()
        WHERE dispute_id = $1
        RETURNING dispute_id, payment_id, merchant_id, amount, currency, status, connector_id, created_at, modified_at`

	d := &paystore.Dispute{}
	err := s.db.QueryRowContext(ctx, query, disputeID, status).Scan(
		&d.DisputeID, &d.PaymentID, &d.MerchantID, &d.Amount, &d.Currency,
		&d.Status, &d.ConnectorID, &d.CreatedAt, &d.ModifiedAt,
	)
	if err != nil {
		return nil, mapErr(err, "update dispute status")
	}
	return d, nil
}
