package paystore

import (
	"context"
	"time"
)

type IntentStatus string

const (
	IntentRequiresPaymentMethod IntentStatus = "requires_payment_method"
	IntentRequiresCapture       IntentStatus = "requires_capture"
	IntentProcessing            IntentStatus = "processing"
	IntentSucceeded             IntentStatus = "succeeded"
	IntentFailed                IntentStatus = "failed"
	IntentCancelled             IntentStatus = "cancelled"
)

// PaymentIntent is the merchant-facing view of one payment. It is the anchor
// record for attempts, captures and refunds.
type PaymentIntent struct {
	PaymentID       string
	MerchantID      string
	Status          IntentStatus
	Amount          int64
	AmountCaptured  int64
	Currency        string
	CustomerID      string
	Description     string
	ActiveAttemptID string
	CreatedAt       time.Time
	ModifiedAt      time.Time
}

type PaymentIntentInterface interface {
	InsertPaymentIntent(ctx context.Context, intent *PaymentIntent) (*PaymentIntent, error)
	FindPaymentIntentByID(ctx context.Context, merchantID, paymentID string) (*PaymentIntent, error)
	UpdatePaymentIntent(ctx context.Context, intent *PaymentIntent) (*PaymentIntent, error)
}
