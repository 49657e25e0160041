package ports

import "context"

// CreateProductInput carries all data needed to add a product.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	Category    string
	Stock       int
}

// ProductView is the listing item returned by the service. It deliberately
// omits the internal document id, mirroring the public listing contract.
type ProductView struct {
	Name        string
	Price       float64
	Description string
	Category    string
	Stock       int
}

// CatalogService defines use-case operations for the product catalog.
type CatalogService interface {
	AddProduct(ctx context.Context, input CreateProductInput) (string, error)
	ListProducts(ctx context.Context) ([]ProductView, error)
	// UpdateProduct merges the supplied fields. An unknown id is a silent
	// no-op, not an error.
	UpdateProduct(ctx context.Context, id string, update ProductUpdate) error
	// DeleteProduct removes a product. An unknown id is a silent no-op.
	DeleteProduct(ctx context.Context, id string) error
}
