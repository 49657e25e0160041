package domain

import "errors"

// ErrMissingFields is returned when a request payload lacks a required field.
// The HTTP layer renders it as a static category-level message, never naming
// the specific field.
var ErrMissingFields = errors.New("missing fields")

// ErrInvalidID is returned when a supplied identifier is not a valid
// document id.
var ErrInvalidID = errors.New("invalid id")
