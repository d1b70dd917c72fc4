package paystore

import (
	"context"
	"time"
)

type Customer struct {
	CustomerID  string
	MerchantID  string
	Name        string
	Email       string
	Phone       string
	Description string
	CreatedAt   time.Time
	ModifiedAt  time.Time
}

// Customers are scoped per merchant: the same customer ID under two merchants
// is two distinct records.
type CustomerInterface interface {
	InsertCustomer(ctx context.Context, customer *Customer) (*Customer, error)
	FindCustomerByID(ctx context.Context, merchantID, customerID string) (*Customer, error)
	UpdateCustomer(ctx context.Context, customer *Customer) (*Customer, error)
	DeleteCustomer(ctx context.Context, merchantID, customerID string) error
}
