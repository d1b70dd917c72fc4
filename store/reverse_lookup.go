package store

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertReverseLookup(ctx context.Context, lookup *paystore.ReverseLookup) (*paystore.ReverseLookup, error) {
	query := `INSERT INTO reverse_lookup (lookup_id, sk_id, pk_id, source)
        VALUES ($1, $2, $3, $4)`

	if _, err := s.db.ExecContext(ctx, query, lookup.LookupID, lookup.SKID, lookup.PKID, lookup.Source); err != nil {
		return nil, mapErr(err, "insert reverse lookup")
	}
	return lookup, nil
}

func (s *Store) GetReverseLookup(ctx context.Context, lookupID string) (*paystore.ReverseLookup, error) {
	query := `SELECT lookup_id, sk_id, pk_id, source FROM reverse_lookup WHERE lookup_id = $1`

	l := &paystore.ReverseLookup{}
	err := s.db.QueryRowContext(ctx, query, lookupID).Scan(&l.LookupID, &l.SKID, &l.PKID, &l.Source)
	if err != nil {
		return nil, mapErr(err, "get reverse lookup")
	}
	return l, nil
}
