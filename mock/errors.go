package mock

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/unkn0wn-root/paystore"
)

// Same sentinel wrapping shape as the durable backend so callers cannot tell
// the backends apart by error handling.
func notFound(op string) error {
	return pkgerrors.Wrap(paystore.ErrNotFound, op)
}

func duplicate(op string) error {
	return pkgerrors.Wrap(paystore.ErrDuplicateEntry, op)
}

func copyOf[T any](v *T) *T {
	c := *v
	return &c
}
