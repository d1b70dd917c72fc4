package paystore

import (
	"context"
	"time"
)

type AttemptStatus string

const (
	AttemptStarted         AttemptStatus = "started"
	AttemptAuthorized      AttemptStatus = "authorized"
	AttemptCharged         AttemptStatus = "charged"
	AttemptFailed          AttemptStatus = "failed"
	AttemptVoided          AttemptStatus = "voided"
)

// PaymentAttempt is one try at completing a PaymentIntent through a specific
// connector. Accelerated flows keep attempts in the kv cache keyed by
// merchant and payment ID.
type PaymentAttempt struct {
	AttemptID     string
	PaymentID     string
	MerchantID    string
	Status        AttemptStatus
	Amount        int64
	Currency      string
	ConnectorName string
	ErrorMessage  string
	CreatedAt     time.Time
	ModifiedAt    time.Time
}

type PaymentAttemptInterface interface {
	InsertPaymentAttempt(ctx context.Context, attempt *PaymentAttempt) (*PaymentAttempt, error)
	FindPaymentAttemptByID(ctx context.Context, merchantID, attemptID string) (*PaymentAttempt, error)
	UpdatePaymentAttempt(ctx context.Context, attempt *PaymentAttempt) (*PaymentAttempt, error)
}
