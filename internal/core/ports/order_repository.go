package ports

import (
	"context"

	"github.com/QaissAA/web-assignment3/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Insert(ctx context.Context, o *domain.Order) (string, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// UpdateStatus sets the order_status field only and returns the number of
	// matched documents (0 when the id is unknown).
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
}
