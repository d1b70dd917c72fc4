package store

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"

	"github.com/unkn0wn-root/paystore"
)

const pqUniqueViolation = "23505"

// mapErr translates driver errors into the backend-independent sentinels so
// the mock and durable backends fail with the same shape.
func mapErr(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return pkgerrors.Wrap(paystore.ErrNotFound, op)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return pkgerrors.Wrap(paystore.ErrDuplicateEntry, op)
	}
	return pkgerrors.Wrap(err, op)
}

func notFound(op string) error {
	return pkgerrors.Wrap(paystore.ErrNotFound, op)
}
