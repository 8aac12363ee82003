package repository

import (
	"fmt"
	"testing"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/db"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductRepoTest(t *testing.T) (ProductRepository, *gorm.DB, *model.Category) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	category := &model.Category{Name: "Sofas", Slug: "sofas", IsActive: true}
	require.NoError(t, testDB.Create(category).Error)

	return NewProductRepository(testDB), testDB, category
}

func makeProduct(t *testing.T, repo ProductRepository, categoryID uint, name, slug string) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:        name,
		Slug:        slug,
		Description: "test product",
		Price:       100,
		CategoryID:  categoryID,
		IsActive:    true,
		InStock:     true,
	}
	require.NoError(t, repo.Create(product))
	return product
}

func TestProductRepository_FindWithFilter_Pagination(t *testing.T) {
	repo, _, category := setupProductRepoTest(t)

	for i := 0; i < 25; i++ {
		makeProduct(t, repo, category.ID, fmt.Sprintf("Product %02d", i), fmt.Sprintf("product-%02d", i))
	}

	products, total, err := repo.FindWithFilter(ProductFilter{
		ActiveOnly: true,
		Limit:      10,
		Offset:     10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, products, 10)

	// Last page holds the remainder
	products, total, err = repo.FindWithFilter(ProductFilter{
		ActiveOnly: true,
		Limit:      10,
		Offset:     20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, products, 5)
}

func TestProductRepository_FindWithFilter_Filters(t *testing.T) {
	repo, testDB, category := setupProductRepoTest(t)

	other := &model.Category{Name: "Tables", Slug: "tables", IsActive: true}
	require.NoError(t, testDB.Create(other).Error)

	sofa := makeProduct(t, repo, category.ID, "Velvet Sofa", "velvet-sofa")
	table := makeProduct(t, repo, other.ID, "Oak Table", "oak-table")

	hidden := makeProduct(t, repo, category.ID, "Hidden Sofa", "hidden-sofa")
	require.NoError(t, testDB.Model(hidden).Update("is_active", false).Error)

	newProduct := makeProduct(t, repo, category.ID, "Fresh Chair", "fresh-chair")
	require.NoError(t, testDB.Model(newProduct).Update("is_new_product", true).Error)

	// Category filter
	products, total, err := repo.FindWithFilter(ProductFilter{CategoryID: &other.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, table.ID, products[0].ID)

	// Case-insensitive search over name and description
	products, _, err = repo.FindWithFilter(ProductFilter{Search: "VELVET"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, sofa.ID, products[0].ID)

	// Active-only hides deactivated products
	_, total, err = repo.FindWithFilter(ProductFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	// New-only
	products, _, err = repo.FindWithFilter(ProductFilter{NewOnly: true})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, newProduct.ID, products[0].ID)
}

func TestProductRepository_FindWithFilter_SortAllowList(t *testing.T) {
	repo, testDB, category := setupProductRepoTest(t)

	cheap := makeProduct(t, repo, category.ID, "Cheap", "cheap")
	expensive := makeProduct(t, repo, category.ID, "Expensive", "expensive")
	require.NoError(t, testDB.Model(expensive).Update("price", 900).Error)

	products, _, err := repo.FindWithFilter(ProductFilter{SortBy: "price", SortAscending: true})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, cheap.ID, products[0].ID)

	// Unknown sort keys fall back to created_at instead of reaching the query
	products, _, err = repo.FindWithFilter(ProductFilter{SortBy: "name; DROP TABLE products"})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductRepository_Create_DuplicateSlug(t *testing.T) {
	repo, _, category := setupProductRepoTest(t)

	makeProduct(t, repo, category.ID, "Velvet Sofa", "velvet-sofa")

	dup := &model.Product{
		Name:        "Velvet Sofa Again",
		Slug:        "velvet-sofa",
		Description: "duplicate",
		Price:       100,
		CategoryID:  category.ID,
	}
	err := repo.Create(dup)
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateKey(err))
}

func TestProductRepository_Delete_RemovesImages(t *testing.T) {
	repo, testDB, category := setupProductRepoTest(t)

	product := makeProduct(t, repo, category.ID, "Velvet Sofa", "velvet-sofa")
	require.NoError(t, repo.AddImages(product.ID, []model.ProductImage{
		{URL: "https://cdn.example.com/a.jpg", Key: "products/a.jpg"},
		{URL: "https://cdn.example.com/b.jpg", Key: "products/b.jpg"},
	}))

	require.NoError(t, repo.Delete(product.ID))

	var imageCount int64
	testDB.Model(&model.ProductImage{}).Where("product_id = ?", product.ID).Count(&imageCount)
	assert.Equal(t, int64(0), imageCount)

	_, err := repo.FindByID(product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductRepository_DeleteImage(t *testing.T) {
	repo, _, category := setupProductRepoTest(t)

	product := makeProduct(t, repo, category.ID, "Velvet Sofa", "velvet-sofa")
	require.NoError(t, repo.AddImages(product.ID, []model.ProductImage{
		{URL: "https://cdn.example.com/a.jpg", Key: "products/a.jpg"},
		{URL: "https://cdn.example.com/b.jpg", Key: "products/b.jpg"},
	}))

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	require.Len(t, found.Images, 2)

	require.NoError(t, repo.DeleteImage(product.ID, found.Images[0].ID))

	found, err = repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Len(t, found.Images, 1)
}
