package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertAddress(ctx context.Context, address *paystore.Address) (*paystore.Address, error) {
	query := `INSERT INTO address (address_id, customer_id, merchant_id, line1, line2, city, state, zip, country_code)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at, modified_at`

	out := *address
	err := s.db.QueryRowContext(ctx, query,
		address.AddressID, address.CustomerID, address.MerchantID,
		address.Line1, address.Line2, address.City, address.State, address.Zip, address.CountryCode,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "insert address")
	}
	return &out, nil
}

func (s *Store) FindAddressByID(ctx context.Context, addressID string) (*paystore.Address, error) {
	query := `SELECT address_id, customer_id, merchant_id, line1, line2, city, state, zip, country_code, created_at, modified_at
        FROM address WHERE address_id = $1`

	a := &paystore.Address{}
	err := s.db.QueryRowContext(ctx, query, addressID).Scan(
		&a.AddressID, &a.CustomerID, &a.MerchantID,
		&a.Line1, &a.Line2, &a.City, &a.State, &a.Zip, &a.CountryCode,
		&a.CreatedAt, &a.ModifiedAt,
	)
	if err != nil {
		return nil, mapErr(err, "find address")
	}
	return a, nil
}

func (s *Store) UpdateAddress(ctx context.Context, address *paystore.Address) (*paystore.Address, error) {
	query := `UPDATE address
        SET line1 = $2, line2 = $3, city = $4, state = $5, zip = $6, country_code = $7, modified_at = now()
        WHERE address_id = $1
        RETURNING customer_id, merchant_id, created_at, modified_at`

	out := *address
	err := s.db.QueryRowContext(ctx, query,
		address.AddressID, address.Line1, address.Line2, address.City, address.State, address.Zip, address.CountryCode,
	).Scan(&out.CustomerID, &out.MerchantID, &out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "update address")
	}
	return &out, nil
}
