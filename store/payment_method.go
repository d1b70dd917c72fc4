package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertPaymentMethod(ctx context.Context, method *paystore.PaymentMethod) (*paystore.PaymentMethod, error) {
	query := `INSERT INTO payment_methods
        (payment_method_id, customer_id, merchant_id, scheme, last4, expiry_month, expiry_year)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at`

	out := *method
	err := s.db.QueryRowContext(ctx, query,
		method.PaymentMethodID, method.CustomerID, method.MerchantID,
		method.Scheme, method.Last4, method.ExpiryMonth, method.ExpiryYear,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, mapErr(err, "insert payment method")
	}
	return &out, nil
}

func (s *Store) FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*paystore.PaymentMethod, error) {
	query := `SELECT payment_method_id, customer_id, merchant_id, scheme, last4, expiry_month, expiry_year, created_at
        FROM payment_methods WHERE payment_method_id = $1`

	m := &paystore.PaymentMethod{}
	err := s.db.QueryRowContext(ctx, query, paymentMethodID).Scan(
		&m.PaymentMethodID, &m.CustomerID, &m.MerchantID, &m.Scheme,
		&m.Last4, &m.ExpiryMonth, &m.ExpiryYear, &m.CreatedAt,
	)
	if err != nil {
		return nil, mapErr(err, "find payment method")
	}
	return m, nil
}

func (s *Store) FindPaymentMethodsByCustomer(ctx context.Context, merchantID, customerID string) ([]*paystore.PaymentMethod, error) {
	query := `SELECT payment_method_id, customer_id, merchant_id, scheme, last4, expiry_month, expiry_year, created_at
        FROM payment_methods WHERE merchant_id = $1 AND customer_id = $2 ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, merchantID, customerID)
	if err != nil {
		return nil, mapErr(err, "find payment methods by customer")
	}
	defer rows.Close()

	var out []*paystore.PaymentMethod
	for rows.Next() {
		m := &paystore.PaymentMethod{}
		if err := rows.Scan(
			&m.PaymentMethodID, &m.CustomerID, &m.MerchantID, &m.Scheme,
			&m.Last4, &m.ExpiryMonth, &m.ExpiryYear, &m.CreatedAt,
		); err != nil {
			return nil, mapErr(err, "find payment methods by customer")
		}
		out = append(out, m)
	}
	return out, mapErr(rows.Err(), "find payment methods by customer")
}

func (s *Store) DeletePaymentMethod(ctx context.Context, paymentMethodID string) error {
	query := `DELETE FROM payment_methods WHERE payment_method_id = $1`

	result, err := s.db.ExecContext(ctx, query, paymentMethodID)
	if err != nil {
		return mapErr(err, "delete payment method")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return mapErr(err, "delete payment method")
	}
	if n == 0 {
		return notFound("delete payment method")
	}
	return nil
}
