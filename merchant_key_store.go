package paystore

import (
	"context"
	"time"
)

// MerchantKeyStore holds a merchant's data-encryption key, itself encrypted
// under the master key exposed by MasterKeyInterface.
type MerchantKeyStore struct {
	MerchantID   string
	EncryptedKey []byte
	CreatedAt    time.Time
}

type MerchantKeyStoreInterface interface {
	InsertMerchantKeyStore(ctx context.Context, keyStore *MerchantKeyStore) (*MerchantKeyStore, error)
	GetMerchantKeyStore(ctx context.Context, merchantID string) (*MerchantKeyStore, error)
}
