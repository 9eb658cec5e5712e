// Package catalog serves the product list. The catalog is static: it is
// seeded into the database on first startup and only read afterwards.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eluxe/eluxe-backend/internal/database"
	"github.com/eluxe/eluxe-backend/internal/models"
)

// ErrNotFound is returned when no product exists with the requested id.
var ErrNotFound = errors.New("product not found")

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// EnsureSeeded inserts the catalog when the products table is empty.
func (s *Service) EnsureSeeded(ctx context.Context) error {
	count, err := database.DB.NewSelect().
		Model((*models.Product)(nil)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := database.DB.NewInsert().Model(&seedProducts).Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	return nil
}

// List returns all products ordered by id.
func (s *Service) List(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := database.DB.NewSelect().
		Model(&products).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get returns one product by id.
func (s *Service) Get(ctx context.Context, id int64) (*models.Product, error) {
	product := new(models.Product)
	err := database.DB.NewSelect().
		Model(product).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return product, nil
}
