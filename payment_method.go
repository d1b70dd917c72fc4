package paystore

import (
	"context"
	"time"
)

type PaymentMethod struct {
	PaymentMethodID string
	CustomerID      string
	MerchantID      string
	Scheme          string // e.g. "visa", "sepa_debit"
	Last4           string
	ExpiryMonth     uint8
	ExpiryYear      uint16
	CreatedAt       time.Time
}

type PaymentMethodInterface interface {
	InsertPaymentMethod(ctx context.Context, method *PaymentMethod) (*PaymentMethod, error)
	FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*PaymentMethod, error)
	FindPaymentMethodsByCustomer(ctx context.Context, merchantID, customerID string) ([]*PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, paymentMethodID string) error
}
