package paystore

import (
	"context"
	"time"
)

type DisputeStatus string

const (
	DisputeOpened    DisputeStatus = "opened"
	DisputeChallenged DisputeStatus = "challenged"
	DisputeWon       DisputeStatus = "won"
	DisputeLost      DisputeStatus = "lost"
)

type Dispute struct {
	DisputeID     string
	PaymentID     string
	MerchantID    string
	Amount        int64
	Currency      string
	Status        DisputeStatus
	ConnectorID   string
	CreatedAt     time.Time
	ModifiedAt    time.Time
}

type DisputeInterface interface {
	InsertDispute(ctx context.Context, dispute *Dispute) (*Dispute, error)
	FindDisputeByID(ctx context.Context, disputeID string) (*Dispute, error)
	UpdateDisputeStatus(ctx context.Context, disputeID string, status DisputeStatus) (*Dispute, error)
}
