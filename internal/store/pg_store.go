package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	perrors "github.com/nidhis234/electronicsstore/internal/errors"
	"github.com/nidhis234/electronicsstore/internal/store/db"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint violation.
const uniqueViolation = "23505"

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
	q  *db.Queries
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{
		db: dbp,
		q:  db.New(dbp),
	}
}

// FindByProductID retrieves a product by its business product id.
// Returns ErrProductNotFound if no product exists with the given id.
func (p *PgStore) FindByProductID(ctx context.Context, productID string) (*db.Product, error) {
	product, err := p.q.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by product id: %w", err)
	}
	return &product, nil
}

// FindAll retrieves all stored products.
// It returns a slice of products, which may be empty if no products exist.
func (p *PgStore) FindAll(ctx context.Context) ([]db.Product, error) {
	products, err := p.q.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	return products, nil
}

// Create adds a new product. The duplicate check and the insert run in a
// single transaction; a unique violation from a concurrent insert maps to
// ErrProductAlreadyExists as well.
func (p *PgStore) Create(ctx context.Context, productID, name string, manufacturer string, price float64, inventory int32) (*db.Product, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	qtx := p.q.WithTx(tx)

	_, err = qtx.FindByProductID(ctx, productID)
	if err == nil {
		return nil, perrors.ErrProductAlreadyExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check for existing product: %w", err)
	}

	product, err := qtx.Create(ctx, db.CreateParams{
		ProductID:    productID,
		Name:         name,
		Manufacturer: toText(manufacturer),
		Price:        price,
		Inventory:    inventory,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, perrors.ErrProductAlreadyExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &product, nil
}

// Update replaces name, manufacturer, price and inventory of an existing product.
// Returns ErrProductNotFound if no product exists with the given id.
func (p *PgStore) Update(ctx context.Context, productID, name string, manufacturer string, price float64, inventory int32) (*db.Product, error) {
	product, err := p.q.Update(ctx, db.UpdateParams{
		ProductID:    productID,
		Name:         name,
		Manufacturer: toText(manufacturer),
		Price:        price,
		Inventory:    inventory,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

// UpdateInventory sets the inventory of a product to an absolute value.
// Returns ErrProductNotFound if no product exists with the given id.
func (p *PgStore) UpdateInventory(ctx context.Context, productID string, inventory int32) (*db.Product, error) {
	product, err := p.q.UpdateInventory(ctx, db.UpdateInventoryParams{
		ProductID: productID,
		Inventory: inventory,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product inventory: %w", err)
	}
	return &product, nil
}

// GetInventory returns the stored inventory of a product.
// Returns ErrProductNotFound if no product exists with the given id.
func (p *PgStore) GetInventory(ctx context.Context, productID string) (int32, error) {
	inventory, err := p.q.GetInventory(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, perrors.ErrProductNotFound
		}
		return 0, fmt.Errorf("failed to get product inventory: %w", err)
	}
	return inventory, nil
}

// DeleteByProductID removes a product by its business product id and reports
// how many rows were removed.
func (p *PgStore) DeleteByProductID(ctx context.Context, productID string) (int64, error) {
	count, err := p.q.DeleteByProductID(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete product by product id: %w", err)
	}
	return count, nil
}

// toText converts an optional manufacturer string to a nullable text column value.
func toText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
