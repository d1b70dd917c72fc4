package paystore

import (
	"context"
	"time"
)

type Address struct {
	AddressID   string
	CustomerID  string
	MerchantID  string
	Line1       string
	Line2       string
	City        string
	State       string
	Zip         string
	CountryCode string
	CreatedAt   time.Time
	ModifiedAt  time.Time
}

type AddressInterface interface {
	InsertAddress(ctx context.Context, address *Address) (*Address, error)
	FindAddressByID(ctx context.Context, addressID string) (*Address, error)
	UpdateAddress(ctx context.Context, address *Address) (*Address, error)
}
