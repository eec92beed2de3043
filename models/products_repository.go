package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/mytheresa/product-entry/database"
	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

var (
	// ErrDuplicateProduct is returned when a product with the same code already exists.
	ErrDuplicateProduct = errors.New("product code already exists")
	// ErrInvalidProduct is returned when the database rejects the row.
	ErrInvalidProduct = errors.New("product rejected by schema constraints")
)

type ProductFilters struct {
	// Category matches exactly and case-sensitively; empty selects every product.
	Category string
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// Create inserts a single product with bound parameters.
func (r *ProductsRepository) Create(ctx context.Context, product *Product) error {
	err := r.db.WithContext(ctx).Create(product).Error
	switch {
	case err == nil:
		return nil
	case database.IsDuplicateKeyErr(err):
		return fmt.Errorf("create product %q: %w: %w", product.Code, ErrDuplicateProduct, err)
	case database.IsConstraintErr(err):
		return fmt.Errorf("create product %q: %w: %w", product.Code, ErrInvalidProduct, err)
	default:
		return fmt.Errorf("create product %q: %w", product.Code, err)
	}
}

func (r *ProductsRepository) List(ctx context.Context, filters ProductFilters) ([]Product, error) {
	var products []Product

	query := r.db.WithContext(ctx).Model(&Product{})
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListCategories returns the distinct categories in use, sorted.
func (r *ProductsRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&Product{}).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Ping checks that the database is reachable.
func (r *ProductsRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
