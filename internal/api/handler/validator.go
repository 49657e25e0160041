package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/QaissAA/web-assignment3/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Request schemas declare
// required fields as pointers, so validation is a pure presence check; any
// failure collapses into the category-level missing-fields error.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		return domain.ErrMissingFields
	}
	return nil
}
