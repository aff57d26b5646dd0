package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record exists for the requested id.
var ErrNotFound = errors.New("patient not found")

// Repository is the narrow key-value view of the patients collection.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	// Put inserts or overwrites the record at its id (upsert semantics).
	Put(ctx context.Context, p *Patient) error
	// Update replaces all mutable fields for the id. Applying to an absent
	// id is a store-level no-op, not an error.
	Update(ctx context.Context, p *Patient) error
}
