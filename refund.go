package paystore

import (
	"context"
	"time"
)

type RefundStatus string

const (
	RefundPending RefundStatus = "pending"
	RefundSuccess RefundStatus = "success"
	RefundFailure RefundStatus = "failure"
)

type Refund struct {
	RefundID     string
	PaymentID    string
	MerchantID   string
	Amount       int64
	Currency     string
	Status       RefundStatus
	Reason       string
	CreatedAt    time.Time
	ModifiedAt   time.Time
}

type RefundInterface interface {
	InsertRefund(ctx context.Context, refund *Refund) (*Refund, error)
	FindRefundByID(ctx context.Context, merchantID, refundID string) (*Refund, error)
	UpdateRefundStatus(ctx context.Context, merchantID, refundID string, status RefundStatus) (*Refund, error)
	ListRefundsByPaymentID(ctx context.Context, merchantID, paymentID string) ([]*Refund, error)
}
