package domain

import "errors"

var (
	// ErrNotFound is returned when a product lookup by id or name has no match
	ErrNotFound = errors.New("product not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrParse is returned when numeric, date or record text cannot be parsed
	ErrParse = errors.New("parse error")
)
