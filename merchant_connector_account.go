package paystore

import (
	"context"
	"time"
)

// MerchantConnectorAccount holds one merchant's credentials and routing
// options for a payment connector. Credentials are stored encrypted by the
// caller; this layer never interprets them.
type MerchantConnectorAccount struct {
	ConnectorID         string
	MerchantID          string
	ConnectorName       string
	EncryptedCredentials []byte
	TestMode            bool
	Disabled            bool
	CreatedAt           time.Time
	ModifiedAt          time.Time
}

type MerchantConnectorAccountInterface interface {
	InsertMerchantConnectorAccount(ctx context.Context, account *MerchantConnectorAccount) (*MerchantConnectorAccount, error)
	FindMerchantConnectorAccountByID(ctx context.Context, merchantID, connectorID string) (*MerchantConnectorAccount, error)
	ListMerchantConnectorAccounts(ctx context.Context, merchantID string) ([]*MerchantConnectorAccount, error)
}
