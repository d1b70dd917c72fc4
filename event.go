package paystore

import (
	"context"
	"time"
)

type EventType string

const (
	EventPaymentSucceeded EventType = "payment_succeeded"
	EventPaymentFailed    EventType = "payment_failed"
	EventRefundSucceeded  EventType = "refund_succeeded"
	EventDisputeOpened    EventType = "dispute_opened"
)

// Event is an outgoing webhook record. Payload is stored opaque; delivery is
// a collaborator's concern.
type Event struct {
	EventID    string
	MerchantID string
	EventType  EventType
	ResourceID string
	Payload    []byte
	CreatedAt  time.Time
}

type EventInterface interface {
	InsertEvent(ctx context.Context, event *Event) (*Event, error)
	ListEventsByMerchant(ctx context.Context, merchantID string, limit int) ([]*Event, error)
}
