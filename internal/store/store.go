// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"github.com/nidhis234/electronicsstore/internal/store/db"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
// All lookups are keyed by the business product id, never by the internal id.
type ProductStore interface {
	// FindByProductID retrieves a single product by its business product id.
	// Returns ErrProductNotFound if no product exists with the given id.
	FindByProductID(ctx context.Context, productID string) (*db.Product, error)

	// FindAll returns all stored products.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]db.Product, error)

	// Create adds a new product. The internal id is assigned by the store.
	// Returns ErrProductAlreadyExists if the product id is already taken.
	Create(ctx context.Context, productID, name string, manufacturer string, price float64, inventory int32) (*db.Product, error)

	// Update replaces name, manufacturer, price and inventory of an existing
	// product. The product id itself is never changed.
	// Returns ErrProductNotFound if no product exists with the given id.
	Update(ctx context.Context, productID, name string, manufacturer string, price float64, inventory int32) (*db.Product, error)

	// UpdateInventory sets the inventory of a product to an absolute value.
	// Returns ErrProductNotFound if no product exists with the given id.
	UpdateInventory(ctx context.Context, productID string, inventory int32) (*db.Product, error)

	// GetInventory returns the stored inventory of a product.
	// Returns ErrProductNotFound if no product exists with the given id.
	GetInventory(ctx context.Context, productID string) (int32, error)

	// DeleteByProductID removes a product by its business product id and
	// reports how many rows were removed. Absence is not an error.
	DeleteByProductID(ctx context.Context, productID string) (int64, error)
}
