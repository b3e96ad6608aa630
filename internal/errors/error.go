// Package errors provides custom error types for product-related operations.
package errors

import "errors"

var (
	// ErrProductNotFound is returned when an operation targets a product
	// that does not exist and absence is an error for that operation.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductAlreadyExists is returned when adding a product whose
	// product id is already taken.
	ErrProductAlreadyExists = errors.New("product already exists")

	// ErrNoProductsFound is returned by the list operation when the
	// catalog is empty.
	ErrNoProductsFound = errors.New("no products found")
)
