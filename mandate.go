package paystore

import (
	"context"
	"time"
)

type MandateStatus string

const (
	MandateActive   MandateStatus = "active"
	MandateInactive MandateStatus = "inactive"
	MandateRevoked  MandateStatus = "revoked"
)

type Mandate struct {
	MandateID       string
	MerchantID      string
	CustomerID      string
	PaymentMethodID string
	Status          MandateStatus
	MaxAmount       int64
	Currency        string
	CreatedAt       time.Time
}

type MandateInterface interface {
	InsertMandate(ctx context.Context, mandate *Mandate) (*Mandate, error)
	FindMandateByID(ctx context.Context, merchantID, mandateID string) (*Mandate, error)
	UpdateMandateStatus(ctx context.Context, merchantID, mandateID string, status MandateStatus) (*Mandate, error)
}
