package store

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgtype"
	perrors "github.com/nidhis234/electronicsstore/internal/errors"
	"github.com/nidhis234/electronicsstore/internal/store/db"
)

// inMemory implements ProductStore using an in-memory map keyed by the
// business product id. It mirrors the error contract of PgStore.
type inMemory struct {
	mu       sync.RWMutex
	products map[string]db.Product
	nextID   int64
}

// NewInMemoryStore creates a new instance of ProductStore
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make(map[string]db.Product),
		nextID:   1,
	}
}

// FindByProductID retrieves a product by its business product id.
func (s *inMemory) FindByProductID(_ context.Context, productID string) (*db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[productID]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

// FindAll retrieves all products ordered by internal id.
func (s *inMemory) FindAll(_ context.Context) ([]db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]db.Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	// map iteration order is random; restore insertion order
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j-1].ID > list[j].ID; j-- {
			list[j-1], list[j] = list[j], list[j-1]
		}
	}
	return list, nil
}

// Create adds a new product, assigning the next internal id.
func (s *inMemory) Create(_ context.Context, productID, name string, manufacturer string, price float64, inventory int32) (*db.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[productID]; ok {
		return nil, perrors.ErrProductAlreadyExists
	}
	product := db.Product{
		ID:           s.nextID,
		ProductID:    productID,
		Name:         name,
		Manufacturer: pgtype.Text{String: manufacturer, Valid: manufacturer != ""},
		Price:        price,
		Inventory:    inventory,
	}
	s.nextID++
	s.products[productID] = product

	return &product, nil
}

// Update replaces all fields of an existing product except the product id.
func (s *inMemory) Update(_ context.Context, productID, name string, manufacturer string, price float64, inventory int32) (*db.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	product.Name = name
	product.Manufacturer = pgtype.Text{String: manufacturer, Valid: manufacturer != ""}
	product.Price = price
	product.Inventory = inventory
	s.products[productID] = product

	return &product, nil
}

// UpdateInventory sets the inventory of a product to an absolute value.
func (s *inMemory) UpdateInventory(_ context.Context, productID string, inventory int32) (*db.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	product.Inventory = inventory
	s.products[productID] = product

	return &product, nil
}

// GetInventory returns the stored inventory of a product.
func (s *inMemory) GetInventory(_ context.Context, productID string) (int32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[productID]
	if !ok {
		return 0, perrors.ErrProductNotFound
	}
	return product.Inventory, nil
}

// DeleteByProductID removes a product and reports how many entries were removed.
func (s *inMemory) DeleteByProductID(_ context.Context, productID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[productID]; !ok {
		return 0, nil
	}
	delete(s.products, productID)
	return 1, nil
}
