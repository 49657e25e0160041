package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/QaissAA/web-assignment3/internal/api/metrics"
	"github.com/QaissAA/web-assignment3/internal/core/domain"
	"github.com/QaissAA/web-assignment3/internal/core/ports"
)

// CatalogService implements product catalog use cases.
type CatalogService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) AddProduct(ctx context.Context, input ports.CreateProductInput) (string, error) {
	product := &domain.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Category:    input.Category,
		Stock:       input.Stock,
	}

	id, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to insert product")
		return "", err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(product.Category).Inc()
	s.log.Info().Str("product_id", id).Str("category", product.Category).Msg("product added")
	return id, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]ports.ProductView, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ProductView, len(products))
	for i, p := range products {
		views[i] = ports.ProductView{
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			Category:    p.Category,
			Stock:       p.Stock,
		}
	}
	return views, nil
}

// UpdateProduct merges the supplied fields into the stored product. A filter
// that matches nothing is reported as success, matching the public contract.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, update ports.ProductUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	matched, err := s.repo.UpdateOne(ctx, id, update)
	if err != nil {
		return err
	}
	if matched == 0 {
		s.log.Debug().Str("product_id", id).Msg("update matched no product")
	}
	return nil
}

// DeleteProduct removes the product. Deleting an unknown id succeeds.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteOne(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		s.log.Debug().Str("product_id", id).Msg("delete matched no product")
	}
	return nil
}
