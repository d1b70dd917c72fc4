package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertBusinessProfile(ctx context.Context, profile *paystore.BusinessProfile) (*paystore.BusinessProfile, error) {
	query := `INSERT INTO business_profile (profile_id, merchant_id, profile_name, return_url, webhook_url, is_recon)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, modified_at`

	out := *profile
	err := s.db.QueryRowContext(ctx, query,
		profile.ProfileID, profile.MerchantID, profile.ProfileName,
		profile.ReturnURL, profile.WebhookURL, profile.IsRecon,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "insert business profile")
	}
	return &out, nil
}

func (s *Store) FindBusinessProfileByID(ctx context.Context, profileID string) (*paystore.BusinessProfile, error) {
	query := `SELECT profile_id, merchant_id, profile_name, return_url, webhook_url, is_recon, created_at, modified_at
        FROM business_profile WHERE profile_id = $1`

	p := &paystore.BusinessProfile{}
	err := s.db.QueryRowContext(ctx, query, profileID).Scan(
		&p.ProfileID, &p.MerchantID, &p.ProfileName,
		&p.ReturnURL, &p.WebhookURL, &p.IsRecon, &p.CreatedAt, &p.ModifiedAt,
	)
	if err != nil {
		return nil, mapErr(err, "find business profile")
	}
	return p, nil
}

func (s *Store) ListBusinessProfiles(ctx context.Context, merchantID string) ([]*paystore.BusinessProfile, error) {
	query := `SELECT profile_id, merchant_id, profile_name, return_url, webhook_url, is_recon, created_at, modified_at
        FROM business_profile WHERE merchant_id = $1 ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, merchantID)
	if err != nil {
		return nil, mapErr(err, "list business profiles")
	}
	defer rows.Close()

	var out []*paystore.BusinessProfile
	for rows.Next() {
		p := &paystore.BusinessProfile{}
		if err := rows.Scan(
			&p.ProfileID, &p.MerchantID, &p.ProfileName,
			&p.ReturnURL, &p.WebhookURL, &p.IsRecon, &p.CreatedAt, &p.ModifiedAt,
		); err != nil {
			return nil, mapErr(err, "list business profiles")
		}
		out = append(out, p)
	}
	return out, mapErr(rows.Err(), "list business profiles")
}
