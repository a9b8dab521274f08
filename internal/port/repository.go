package port

import (
	"context"

	"github.com/google/uuid"

	"hackfest/internal/domain"
)

// ContentRepository abstracts the row store for content collections.
type ContentRepository interface {
	// List returns every row of a collection in display order.
	List(ctx context.Context, collection string) ([]domain.Item, error)
	Insert(ctx context.Context, item *domain.Item) error
	// UpdateFields writes only the given columns of a single row.
	UpdateFields(ctx context.Context, collection string, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, collection string, id uuid.UUID) error
}
