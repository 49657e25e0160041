package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/QaissAA/web-assignment3/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /api/products.
//
// @Summary      Add a product to the catalog
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  createProductResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.AddProduct(c.Request().Context(), ports.CreateProductInput{
		Name:        *req.Name,
		Price:       *req.Price,
		Description: *req.Description,
		Category:    *req.Category,
		Stock:       *req.Stock,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createProductResponse{
		Message:   "Product added successfully",
		ProductID: id,
	})
}

// List handles GET /api/products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  productResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	views, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]productResponse, len(views))
	for i, v := range views {
		resp[i] = productResponse{
			Name:        v.Name,
			Price:       v.Price,
			Description: v.Description,
			Category:    v.Category,
			Stock:       v.Stock,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/products/:product_id. An id that matches nothing
// still yields the generic success message.
//
// @Summary      Partially update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product_id  path      string                true  "Product id"
// @Param        body        body      updateProductRequest  true  "Fields to merge"
// @Success      200         {object}  messageResponse
// @Failure      400         {object}  errorResponse
// @Router       /api/products/{product_id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.service.UpdateProduct(c.Request().Context(), c.Param("product_id"), ports.ProductUpdate{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Product updated successfully"})
}

// Delete handles DELETE /api/products/:product_id. Deleting an unknown id is
// idempotent and succeeds.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        product_id  path      string  true  "Product id"
// @Success      200         {object}  messageResponse
// @Failure      400         {object}  errorResponse
// @Router       /api/products/{product_id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("product_id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}
