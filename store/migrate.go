package store

import (
	"database/sql"

	pkgerrors "github.com/pkg/errors"
	"github.com/pressly/goose"
)

// Migrate applies pending SQL migrations from dir.
func Migrate(db *sql.DB, dir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return pkgerrors.Wrap(err, "store: set migration dialect")
	}
	if err := goose.Up(db, dir); err != nil {
		return pkgerrors.Wrap(err, "store: apply migrations")
	}
	return nil
}
