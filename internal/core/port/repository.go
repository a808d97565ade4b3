package port

import (
	"context"

	"github.com/arklim/social-platform-blog/internal/core/domain"
)

// Repository is a generic CRUD capability set over one record type keyed by a
// numeric identifier. R is the record shape, P the partial-update shape.
type Repository[R any, P any] interface {
	// Create persists a new record and returns it with the assigned id.
	Create(ctx context.Context, record R) (*R, error)
	// GetByID returns the record or repository.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*R, error)
	// List returns records in ascending id order with offset/limit pagination.
	List(ctx context.Context, skip, limit int) ([]R, error)
	// Update applies only the fields carried by the patch and returns the
	// updated record, or repository.ErrNotFound when no record matches.
	Update(ctx context.Context, id int64, patch P) (*R, error)
	// Delete removes the record, returning repository.ErrNotFound when no
	// record matches.
	Delete(ctx context.Context, id int64) error
}

// BlogRepository is the single concrete instantiation used by this service.
type BlogRepository = Repository[domain.Blog, domain.BlogPatch]
