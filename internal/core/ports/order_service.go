package ports

import (
	"context"
	"time"
)

// PlaceOrderInput carries all data needed to place an order. UserID comes
// from the caller's token, never from the payload.
type PlaceOrderInput struct {
	UserID     string
	ProductIDs []string
	Status     string
}

// OrderView is the listing item returned by the service. It omits the
// internal document id, mirroring the public listing contract.
type OrderView struct {
	UserID     string
	ProductIDs []string
	Status     string
	Timestamp  time.Time
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	// PlaceOrder persists a new order owned by the caller with a server-side
	// UTC timestamp, returning the new order id.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (string, error)
	// ListOrders returns the orders owned by the given user.
	ListOrders(ctx context.Context, userID string) ([]OrderView, error)
	// UpdateStatus sets the status of an order. An unknown id is a silent
	// no-op, not an error.
	UpdateStatus(ctx context.Context, orderID, status string) error
}
