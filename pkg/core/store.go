package core

import "context"

// Store defines the contract for the append-only article store. The backing
// medium holds a flat ordered list of records; reads return the whole list,
// writes append exactly one record. There is no update and no delete.
type Store interface {
	// LoadAll reads every stored article. It fails all-or-nothing: the error
	// wraps ErrNotFound if the backing file is absent, ErrParse if its
	// contents cannot be decoded.
	LoadAll(ctx context.Context) ([]Article, error)

	// Append persists one article at the end of the store. No validation is
	// performed: duplicate IDs and malformed dates are accepted and become
	// the caller's problem.
	Append(ctx context.Context, a Article) error
}
