package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/QaissAA/web-assignment3/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations. All routes sit
// behind the Auth middleware; the owning user always comes from the token.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /api/orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  createOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.PlaceOrder(c.Request().Context(), ports.PlaceOrderInput{
		UserID:     userID,
		ProductIDs: *req.ProductIDs,
		Status:     *req.OrderStatus,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createOrderResponse{
		Message: "Order placed successfully",
		OrderID: id,
	})
}

// List handles GET /api/orders: the caller's own orders only.
//
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   orderResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]orderResponse, len(views))
	for i, v := range views {
		resp[i] = orderResponse{
			UserID:      v.UserID,
			ProductIDs:  v.ProductIDs,
			OrderStatus: v.Status,
			Timestamp:   v.Timestamp,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateStatus handles PUT /api/orders/:order_id. Only the status field is
// mutable; an id that matches nothing still yields the success message.
//
// @Summary      Update an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path      string              true  "Order id"
// @Param        body      body      updateOrderRequest  true  "New status"
// @Success      200       {object}  messageResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Router       /api/orders/{order_id} [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.UpdateStatus(c.Request().Context(), c.Param("order_id"), *req.OrderStatus); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Order status updated successfully"})
}
