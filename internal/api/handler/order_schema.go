package handler

import "time"

type createOrderRequest struct {
	ProductIDs  *[]string `json:"product_ids"  validate:"required"`
	OrderStatus *string   `json:"order_status" validate:"required"`
}

type updateOrderRequest struct {
	OrderStatus *string `json:"order_status" validate:"required"`
}

type createOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// orderResponse is the listing item. The internal document id is
// intentionally omitted, matching the public listing contract.
type orderResponse struct {
	UserID      string    `json:"user_id"`
	ProductIDs  []string  `json:"product_ids"`
	OrderStatus string    `json:"order_status"`
	Timestamp   time.Time `json:"timestamp"`
}
