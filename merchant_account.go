package paystore

import (
	"context"
	"time"
)

type MerchantAccount struct {
	MerchantID   string
	MerchantName string
	ReturnURL    string
	PublicKey    string
	StorageModel string // "postgres_only" or "redis_kv" for accelerated flows
	CreatedAt    time.Time
	ModifiedAt   time.Time
}

type MerchantAccountInterface interface {
	InsertMerchantAccount(ctx context.Context, account *MerchantAccount) (*MerchantAccount, error)
	FindMerchantAccountByID(ctx context.Context, merchantID string) (*MerchantAccount, error)
	UpdateMerchantAccount(ctx context.Context, account *MerchantAccount) (*MerchantAccount, error)
}
