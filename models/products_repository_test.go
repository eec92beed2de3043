package models

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mytheresa/product-entry/config"
	"github.com/mytheresa/product-entry/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

func newTestRepository(t *testing.T) *ProductsRepository {
	t.Helper()
	db, err := database.Connect(context.Background(), config.Config{
		DBType: config.DBTypeSQLite,
		DBPath: filepath.Join(t.TempDir(), "productdb.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return NewProductsRepository(db)
}

func newTestProduct(code, category, description, price string) *Product {
	return &Product{
		Code:        code,
		Category:    category,
		Description: description,
		Price:       decimal.RequireFromString(price),
	}
}

func seed(t *testing.T, repo *ProductsRepository, products ...*Product) {
	t.Helper()
	for _, p := range products {
		require.NoError(t, repo.Create(context.Background(), p))
	}
}

// --- Tests ---

func TestProductsRepositoryCreate(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		existing    []*Product
		product     *Product
		expectedErr error
		expectedLen int
	}{
		{
			name:        "Inserts one row",
			product:     newTestProduct("T001", "tools", "hammer", "9.99"),
			expectedLen: 1,
		},
		{
			name:        "Duplicate code is rejected",
			existing:    []*Product{newTestProduct("T001", "tools", "hammer", "9.99")},
			product:     newTestProduct("T001", "garden", "rake", "14.00"),
			expectedErr: ErrDuplicateProduct,
			expectedLen: 1,
		},
		{
			name:        "Empty code violates the schema",
			product:     newTestProduct("", "tools", "nameless", "1.00"),
			expectedErr: ErrInvalidProduct,
			expectedLen: 0,
		},
		{
			name:        "Empty text fields are stored as given",
			product:     newTestProduct("X001", "", "", "0"),
			expectedLen: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			repo := newTestRepository(t)
			seed(t, repo, tc.existing...)

			// Act
			err := repo.Create(ctx, tc.product)

			// Assert
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			all, err := repo.List(ctx, ProductFilters{})
			require.NoError(t, err)
			assert.Len(t, all, tc.expectedLen)
		})
	}
}

func TestProductsRepositoryList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	seed(t, repo,
		newTestProduct("T001", "tools", "hammer", "9.99"),
		newTestProduct("T002", "tools", "screwdriver", "4.50"),
		newTestProduct("T003", "Tools", "wrench", "12.00"),
		newTestProduct("G001", "garden", "rake", "14.00"),
	)

	testCases := []struct {
		name          string
		filters       ProductFilters
		expectedCodes []string
	}{
		{name: "No filter returns every row", filters: ProductFilters{}, expectedCodes: []string{"T001", "T002", "T003", "G001"}},
		{name: "Exact category match", filters: ProductFilters{Category: "tools"}, expectedCodes: []string{"T001", "T002"}},
		{name: "Category match is case-sensitive", filters: ProductFilters{Category: "Tools"}, expectedCodes: []string{"T003"}},
		{name: "No partial match", filters: ProductFilters{Category: "tool"}, expectedCodes: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			products, err := repo.List(ctx, tc.filters)
			require.NoError(t, err)

			codes := make([]string, len(products))
			for i, p := range products {
				codes[i] = p.Code
			}
			assert.ElementsMatch(t, tc.expectedCodes, codes)
		})
	}
}

func TestProductsRepositoryRoundTripsFields(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	seed(t, repo, newTestProduct("T001", "tools", "hammer", "9.99"))

	products, err := repo.List(ctx, ProductFilters{Category: "tools"})
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Equal(t, "T001", products[0].Code)
	assert.Equal(t, "tools", products[0].Category)
	assert.Equal(t, "hammer", products[0].Description)
	assert.True(t, decimal.RequireFromString("9.99").Equal(products[0].Price), "got price %s", products[0].Price)
}

func TestProductsRepositoryListCategories(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	seed(t, repo,
		newTestProduct("T001", "tools", "hammer", "9.99"),
		newTestProduct("T002", "tools", "screwdriver", "4.50"),
		newTestProduct("G001", "garden", "rake", "14.00"),
	)

	categories, err = repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"garden", "tools"}, categories)
	assert.NoError(t, repo.Ping(ctx))
}
