package table

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/SamSam-01/Gamebrary/internal/repositories/table Store

import (
	"context"
)

// Store defines table-oriented persistence with equality filters and ordering
type Store interface {
	// Insert writes a row and returns it as stored, with generated columns filled in
	Insert(ctx context.Context, input *InsertInput) (Row, error)

	// Select returns every row matching the query
	Select(ctx context.Context, query *Query) ([]Row, error)

	// SelectOne returns the single row matching the query, ErrNotFound when
	// there is none and ErrMultipleRows when there is more than one
	SelectOne(ctx context.Context, query *Query) (Row, error)

	// Update replaces the patched columns on every matching row
	Update(ctx context.Context, input *UpdateInput) error

	// Delete removes every matching row
	Delete(ctx context.Context, input *DeleteInput) error
}
