// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"errors"
	"fmt"

	perrors "github.com/nidhis234/electronicsstore/internal/errors"
	"github.com/nidhis234/electronicsstore/internal/store"
	"github.com/nidhis234/electronicsstore/internal/store/db"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
// Every operation is keyed by the business product id, never the internal id.
type ProductService interface {
	// Add persists a new product.
	// Returns ErrProductAlreadyExists if the product id is already taken.
	Add(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// UpdateInventory replaces the stored inventory with an absolute value.
	// Returns ErrProductNotFound if no product exists with the given id.
	UpdateInventory(ctx context.Context, productID string, inventory int32) (*ProductDto, error)

	// UpdateProduct replaces name, manufacturer, price and inventory of an
	// existing product. The product id itself is never changed: a payload
	// carrying a different product id is rejected with ErrProductNotFound.
	UpdateProduct(ctx context.Context, productID string, product ProductUpdateDto) (*ProductDto, error)

	// FindByProductID retrieves a single product by its product id.
	// Returns ErrProductNotFound if no product exists with the given id.
	FindByProductID(ctx context.Context, productID string) (*ProductDto, error)

	// FindAll returns every product.
	// Returns ErrNoProductsFound if the catalog is empty.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// InventoryCount returns the stored inventory of a product, or 0 when
	// the product does not exist. Absence is not an error here.
	InventoryCount(ctx context.Context, productID string) (int32, error)

	// Remove deletes a product by its product id. Deleting a product that
	// does not exist is a no-op.
	Remove(ctx context.Context, productID string) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductCreateDto represents the data transfer object for adding a new product.
type ProductCreateDto struct {
	ProductID    string  `json:"productId"    validate:"required"`
	Name         string  `json:"name"         validate:"required"`
	Manufacturer string  `json:"manufacturer"`
	Price        float64 `json:"price"        validate:"gte=0"`
	Inventory    int32   `json:"inventory"    validate:"gte=0"`
}

// ProductUpdateDto represents the data transfer object for a full product update.
// ProductID is optional; when present it must match the path target.
type ProductUpdateDto struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"         validate:"required"`
	Manufacturer string  `json:"manufacturer"`
	Price        float64 `json:"price"        validate:"gte=0"`
	Inventory    int32   `json:"inventory"    validate:"gte=0"`
}

// ProductDto is the external representation of a product.
// The internal id is deliberately absent: it is never serialized to clients.
type ProductDto struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer"`
	Price        float64 `json:"price"`
	Inventory    int32   `json:"inventory"`
}

// Add persists a new product and returns it as a ProductDto.
// Returns ErrProductAlreadyExists if the product id is already taken.
func (s *Service) Add(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	created, err := s.repository.Create(ctx, product.ProductID, product.Name, product.Manufacturer, product.Price, product.Inventory)
	if err != nil {
		return nil, fmt.Errorf("failed to add product %s: %w", product.ProductID, err)
	}
	return toDto(created), nil
}

// UpdateInventory replaces the stored inventory with an absolute value and
// returns the updated product as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given id.
func (s *Service) UpdateInventory(ctx context.Context, productID string, inventory int32) (*ProductDto, error) {
	updated, err := s.repository.UpdateInventory(ctx, productID, inventory)
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory for product %s: %w", productID, err)
	}
	return toDto(updated), nil
}

// UpdateProduct replaces name, manufacturer, price and inventory of an
// existing product and returns the updated product as a ProductDto.
// A payload whose product id differs from the target is rejected with the
// same ErrProductNotFound used for missing records.
func (s *Service) UpdateProduct(ctx context.Context, productID string, product ProductUpdateDto) (*ProductDto, error) {
	if product.ProductID != "" && product.ProductID != productID {
		return nil, fmt.Errorf("product id cannot be updated: %w", perrors.ErrProductNotFound)
	}
	updated, err := s.repository.Update(ctx, productID, product.Name, product.Manufacturer, product.Price, product.Inventory)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}
	return toDto(updated), nil
}

// FindByProductID retrieves a product by its product id and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given id.
func (s *Service) FindByProductID(ctx context.Context, productID string) (*ProductDto, error) {
	product, err := s.repository.FindByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}
	return toDto(product), nil
}

// FindAll retrieves every product as a list of ProductDtos.
// An empty catalog is reported as ErrNoProductsFound rather than an empty list.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	if len(products) == 0 {
		return nil, perrors.ErrNoProductsFound
	}
	productDTOs := make([]ProductDto, len(products))
	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}
	return productDTOs, nil
}

// InventoryCount returns the stored inventory of a product.
// A missing product yields 0, not an error.
func (s *Service) InventoryCount(ctx context.Context, productID string) (int32, error) {
	inventory, err := s.repository.GetInventory(ctx, productID)
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get inventory for product %s: %w", productID, err)
	}
	return inventory, nil
}

// Remove deletes a product by its product id. A missing product is ignored;
// only genuine store failures propagate.
func (s *Service) Remove(ctx context.Context, productID string) error {
	count, err := s.repository.DeleteByProductID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to remove product %s: %w", productID, err)
	}
	// count == 0 means the product was already gone; deletion is idempotent
	// from the caller's perspective, so that case is swallowed here.
	_ = count
	return nil
}

// toDto converts a db.Product to its external representation.
// The internal id is dropped here, which makes the "never expose the internal
// id" rule a property of the type rather than of the serializer.
func toDto(product *db.Product) *ProductDto {
	return &ProductDto{
		ProductID:    product.ProductID,
		Name:         product.Name,
		Manufacturer: product.Manufacturer.String,
		Price:        product.Price,
		Inventory:    product.Inventory,
	}
}
