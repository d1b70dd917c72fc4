package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertCustomer(ctx context.Context, customer *paystore.Customer) (*paystore.Customer, error) {
	query := `INSERT INTO customers (customer_id, merchant_id, name, email, phone, description)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, modified_at`

	out := *customer
	err := s.db.QueryRowContext(ctx, query,
		customer.CustomerID, customer.MerchantID, customer.Name,
		customer.Email, customer.Phone, customer.Description,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "insert customer")
	}
	return &out, nil
}

func (s *Store) FindCustomerByID(ctx context.Context, merchantID, customerID string) (*paystore.Customer, error) {
	query := `SELECT customer_id, merchant_id, name, email, phone, description, created_at, modified_at
        FROM customers WHERE merchant_id = $1 AND customer_id = $2`

	c := &paystore.Customer{}
	err := s.db.QueryRowContext(ctx, query, merchantID, customerID).Scan(
		&c.CustomerID, &c.MerchantID, &c.Name, &c.Email, &c.Phone, &c.Description,
		&c.CreatedAt, &c.ModifiedAt,
	)
	if err != nil {
		return nil, mapErr(err, "find customer")
	}
	return c, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, customer *paystore.Customer) (*paystore.Customer, error) {
	query := `UPDATE customers
        SET name = $3, email = $4, phone = $5, description = $6, modified_at = now()
        WHERE merchant_id = $1 AND customer_id = $2
        RETURNING created_at, modified_at`

	out := *customer
	err := s.db.QueryRowContext(ctx, query,
		customer.MerchantID, customer.CustomerID,
		customer.Name, customer.Email, customer.Phone, customer.Description,
	).Scan(&out.CreatedAt, &out.ModifiedAt)
	if err != nil {
		return nil, mapErr(err, "update customer")
	}
	return &out, nil
}

func (s *Store) DeleteCustomer(ctx context.Context, merchantID, customerID string) error {
	query := `DELETE FROM customers WHERE merchant_id = $1 AND customer_id = $2`

	result, err := s.db.ExecContext(ctx, query, merchantID, customerID)
	if err != nil {
		return mapErr(err, "delete customer")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return mapErr(err, "delete customer")
	}
	if n == 0 {
		return notFound("delete customer")
	}
	return nil
}
