package domain

import "time"

// Common order statuses. The status field is a free-form tag; these are the
// values the reference clients send.
const (
	OrderStatusPending = "pending"
	OrderStatusShipped = "shipped"
)

// Order references its owner and products by identifier only; there are no
// embedded documents and no cascading delete.
type Order struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ProductIDs []string  `json:"product_ids"`
	Status     string    `json:"order_status"`
	Timestamp  time.Time `json:"timestamp"`
}
