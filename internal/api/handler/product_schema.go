package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Rendering happens in the central HTTP error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type createProductRequest struct {
	Name        *string  `json:"name"        validate:"required"`
	Price       *float64 `json:"price"       validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Category    *string  `json:"category"    validate:"required"`
	Stock       *int     `json:"stock"       validate:"required"`
}

// updateProductRequest is a partial update: every field is optional and only
// the supplied ones are merged into the stored document.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
}

type createProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// productResponse is the listing item. The internal document id is
// intentionally omitted, matching the public listing contract.
type productResponse struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}
