package repository

import (
	"testing"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCategoryRepoTest(t *testing.T) (CategoryRepository, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	return NewCategoryRepository(testDB), testDB
}

func TestCategoryRepository_FindActiveWithCounts(t *testing.T) {
	repo, testDB := setupCategoryRepoTest(t)

	sofas := &model.Category{Name: "Sofas", Slug: "sofas", IsActive: true, SortOrder: 2}
	tables := &model.Category{Name: "Tables", Slug: "tables", IsActive: true, SortOrder: 1}
	hidden := &model.Category{Name: "Hidden", Slug: "hidden", IsActive: true}
	require.NoError(t, repo.Create(sofas))
	require.NoError(t, repo.Create(tables))
	require.NoError(t, repo.Create(hidden))
	require.NoError(t, testDB.Model(hidden).Update("is_active", false).Error)

	for i := 0; i < 3; i++ {
		require.NoError(t, testDB.Create(&model.Product{
			Name: "P", Slug: "p" + string(rune('a'+i)), Description: "d",
			Price: 10, CategoryID: sofas.ID, IsActive: true,
		}).Error)
	}

	categories, err := repo.FindActiveWithCounts()
	require.NoError(t, err)
	require.Len(t, categories, 2)

	// Ordered by sort_order, then name
	assert.Equal(t, "Tables", categories[0].Name)
	assert.Equal(t, int64(0), categories[0].ProductCount)
	assert.Equal(t, "Sofas", categories[1].Name)
	assert.Equal(t, int64(3), categories[1].ProductCount)
}

func TestCategoryRepository_Delete_ProductsKeepReference(t *testing.T) {
	repo, testDB := setupCategoryRepoTest(t)

	category := &model.Category{Name: "Sofas", Slug: "sofas", IsActive: true}
	require.NoError(t, repo.Create(category))

	product := &model.Product{
		Name: "Velvet Sofa", Slug: "velvet-sofa", Description: "d",
		Price: 100, CategoryID: category.ID, IsActive: true,
	}
	require.NoError(t, testDB.Create(product).Error)

	require.NoError(t, repo.Delete(category.ID))

	_, err := repo.FindByID(category.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The product survives with its now-dangling category reference
	var survivor model.Product
	require.NoError(t, testDB.First(&survivor, product.ID).Error)
	assert.Equal(t, category.ID, survivor.CategoryID)
}

func TestCategoryRepository_FindBySlug_ActiveOnly(t *testing.T) {
	repo, testDB := setupCategoryRepoTest(t)

	category := &model.Category{Name: "Hidden", Slug: "hidden", IsActive: true}
	require.NoError(t, repo.Create(category))
	require.NoError(t, testDB.Model(category).Update("is_active", false).Error)

	_, err := repo.FindBySlug("hidden", true)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	found, err := repo.FindBySlug("hidden", false)
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)
}
