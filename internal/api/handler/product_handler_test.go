package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/QaissAA/web-assignment3/internal/core/domain"
	"github.com/QaissAA/web-assignment3/internal/core/ports"
)

type stubCatalogService struct {
	addFn    func(ctx context.Context, input ports.CreateProductInput) (string, error)
	listFn   func(ctx context.Context) ([]ports.ProductView, error)
	updateFn func(ctx context.Context, id string, update ports.ProductUpdate) error
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCatalogService) AddProduct(ctx context.Context, input ports.CreateProductInput) (string, error) {
	return s.addFn(ctx, input)
}

func (s *stubCatalogService) ListProducts(ctx context.Context) ([]ports.ProductView, error) {
	return s.listFn(ctx)
}

func (s *stubCatalogService) UpdateProduct(ctx context.Context, id string, update ports.ProductUpdate) error {
	return s.updateFn(ctx, id, update)
}

func (s *stubCatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubCatalogService{
		addFn: func(ctx context.Context, input ports.CreateProductInput) (string, error) {
			if input.Name != "Mouse" || input.Price != 19.99 || input.Stock != 5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "prod1", nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Mouse","price":19.99,"description":"wireless","category":"electronics","stock":5}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Product added successfully" || resp["product_id"] != "prod1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestProductHandler_Create_ZeroValuesArePresent(t *testing.T) {
	// Presence, not truthiness: a free product with zero stock is valid.
	stub := &stubCatalogService{
		addFn: func(ctx context.Context, input ports.CreateProductInput) (string, error) {
			if input.Price != 0 || input.Stock != 0 {
				t.Fatalf("zero values lost: %+v", input)
			}
			return "prod1", nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Flyer","price":0,"description":"free","category":"promo","stock":0}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_MissingFields(t *testing.T) {
	stub := &stubCatalogService{
		addFn: func(ctx context.Context, input ports.CreateProductInput) (string, error) {
			t.Fatalf("store must not be reached on a validation failure")
			return "", nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Mouse","price":19.99}`)

	if err := h.Create(c); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestProductHandler_List_OmitsInternalID(t *testing.T) {
	stub := &stubCatalogService{
		listFn: func(ctx context.Context) ([]ports.ProductView, error) {
			return []ports.ProductView{
				{Name: "Mouse", Price: 19.99, Description: "wireless", Category: "electronics", Stock: 5},
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/products", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 product, got %d", len(resp))
	}
	if resp[0]["name"] != "Mouse" {
		t.Fatalf("unexpected product: %+v", resp[0])
	}
	for _, key := range []string{"id", "_id", "product_id"} {
		if _, ok := resp[0][key]; ok {
			t.Fatalf("internal id leaked under %q", key)
		}
	}
}

func TestProductHandler_Update_PassesPartialFields(t *testing.T) {
	stub := &stubCatalogService{
		updateFn: func(ctx context.Context, id string, update ports.ProductUpdate) error {
			if id != "prod1" {
				t.Fatalf("unexpected id: %q", id)
			}
			if update.Price == nil || *update.Price != 14.99 {
				t.Fatalf("price not passed: %+v", update)
			}
			if update.Name != nil || update.Stock != nil {
				t.Fatalf("absent fields must stay nil: %+v", update)
			}
			return nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/products/prod1", `{"price":14.99}`)
	c.SetParamNames("product_id")
	c.SetParamValues("prod1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Product updated successfully" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	stub := &stubCatalogService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "prod1" {
				t.Fatalf("unexpected id: %q", id)
			}
			return nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/products/prod1", "")
	c.SetParamNames("product_id")
	c.SetParamValues("prod1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Product deleted successfully" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}
