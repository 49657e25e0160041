package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/QaissAA/web-assignment3/internal/api/metrics"
	"github.com/QaissAA/web-assignment3/internal/core/domain"
	"github.com/QaissAA/web-assignment3/internal/core/ports"
)

// OrderService implements order use cases.
type OrderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

func (s *OrderService) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (string, error) {
	order := &domain.Order{
		UserID:     input.UserID,
		ProductIDs: input.ProductIDs,
		Status:     input.Status,
		Timestamp:  time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to insert order")
		return "", err
	}

	metrics.OrdersPlacedTotal.WithLabelValues(order.Status).Inc()
	s.log.Info().Str("order_id", id).Str("user_id", order.UserID).Int("products", len(order.ProductIDs)).Msg("order placed")
	return id, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]ports.OrderView, error) {
	orders, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.OrderView, len(orders))
	for i, o := range orders {
		views[i] = ports.OrderView{
			UserID:     o.UserID,
			ProductIDs: o.ProductIDs,
			Status:     o.Status,
			Timestamp:  o.Timestamp,
		}
	}
	return views, nil
}

// UpdateStatus sets the order_status field only. A filter that matches
// nothing is reported as success, matching the public contract.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	matched, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return err
	}
	if matched == 0 {
		s.log.Debug().Str("order_id", orderID).Msg("status update matched no order")
	}
	return nil
}
