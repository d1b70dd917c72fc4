package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertEvent(ctx context.Context, event *paystore.Event) (*paystore.Event, error) {
	query := `INSERT INTO events (event_id, merchant_id, event_type, resource_id, payload)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	out := *event
	err := s.db.QueryRowContext(ctx, query,
		event.EventID, event.MerchantID, event.EventType, event.ResourceID, event.Payload,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, mapErr(err, "insert event")
	}
	return &out, nil
}

func (s *Store) ListEventsByMerchant(ctx context.Context, merchantID string, limit int) ([]*paystore.Event, error) {
	query := `SELECT event_id, merchant_id, event_type, resource_id, payload, created_at
        FROM events WHERE merchant_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, merchantID, limit)
	if err != nil {
		return nil, mapErr(err, "list events")
	}
	defer rows.Close()

	var out []*paystore.Event
	for rows.Next() {
		e := &paystore.Event{}
		if err := rows.Scan(&e.EventID, &e.MerchantID, &e.EventType, &e.ResourceID, &e.Payload, &e.CreatedAt); err != nil {
			return nil, mapErr(err, "list events")
		}
		out = append(out, e)
	}
	return out, mapErr(rows.Err(), "list events")
}
