package ports

import (
	"context"

	"github.com/QaissAA/web-assignment3/internal/core/domain"
)

// ProductUpdate carries a partial-field update. Nil fields are left
// untouched in the stored document.
type ProductUpdate struct {
	Name        *string
	Price       *float64
	Description *string
	Category    *string
	Stock       *int
}

// IsEmpty reports whether no field is set.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.Description == nil &&
		u.Category == nil && u.Stock == nil
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (string, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	// UpdateOne merges the supplied fields into the product with the given id
	// and returns the number of matched documents (0 when the id is unknown).
	UpdateOne(ctx context.Context, id string, update ProductUpdate) (int64, error)
	// DeleteOne removes the product with the given id and returns the number
	// of deleted documents (0 when the id is unknown).
	DeleteOne(ctx context.Context, id string) (int64, error)
}
