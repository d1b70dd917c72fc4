package paystore

import (
	"context"
	"time"
)

type BusinessProfile struct {
	ProfileID    string
	MerchantID   string
	ProfileName  string
	ReturnURL    string
	WebhookURL   string
	IsRecon      bool
	CreatedAt    time.Time
	ModifiedAt   time.Time
}

type BusinessProfileInterface interface {
	InsertBusinessProfile(ctx context.Context, profile *BusinessProfile) (*BusinessProfile, error)
	FindBusinessProfileByID(ctx context.Context, profileID string) (*BusinessProfile, error)
	ListBusinessProfiles(ctx context.Context, merchantID string) ([]*BusinessProfile, error)
}
