package repository

import (
	"testing"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupComboRepoTest(t *testing.T) (ComboRepository, *gorm.DB, []*model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	category := &model.Category{Name: "Sofas", Slug: "sofas", IsActive: true}
	require.NoError(t, testDB.Create(category).Error)

	products := []*model.Product{
		{Name: "Sofa", Slug: "sofa", Description: "d", Price: 500, CategoryID: category.ID, IsActive: true},
		{Name: "Table", Slug: "table", Description: "d", Price: 300, CategoryID: category.ID, IsActive: true},
		{Name: "Lamp", Slug: "lamp", Description: "d", Price: 50, CategoryID: category.ID, IsActive: true},
	}
	for _, p := range products {
		require.NoError(t, testDB.Create(p).Error)
	}

	return NewComboRepository(testDB), testDB, products
}

func TestComboRepository_FindActiveValid(t *testing.T) {
	repo, testDB, products := setupComboRepoTest(t)

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	open := &model.Combo{Name: "Open", Description: "d", IsActive: true, OriginalPrice: 800, ComboPrice: 700,
		Items: []model.ComboItem{{ProductID: products[0].ID, Quantity: 1}, {ProductID: products[1].ID, Quantity: 1}}}
	windowed := &model.Combo{Name: "Windowed", Description: "d", IsActive: true, ValidUntil: &future,
		OriginalPrice: 800, ComboPrice: 700,
		Items: []model.ComboItem{{ProductID: products[0].ID, Quantity: 1}, {ProductID: products[2].ID, Quantity: 1}}}
	expired := &model.Combo{Name: "Expired", Description: "d", IsActive: true, ValidUntil: &past,
		OriginalPrice: 800, ComboPrice: 700,
		Items: []model.ComboItem{{ProductID: products[1].ID, Quantity: 1}, {ProductID: products[2].ID, Quantity: 1}}}

	require.NoError(t, repo.Create(open))
	require.NoError(t, repo.Create(windowed))
	require.NoError(t, repo.Create(expired))

	inactive := &model.Combo{Name: "Off", Description: "d", IsActive: true, OriginalPrice: 800, ComboPrice: 700,
		Items: []model.ComboItem{{ProductID: products[0].ID, Quantity: 1}, {ProductID: products[1].ID, Quantity: 2}}}
	require.NoError(t, repo.Create(inactive))
	require.NoError(t, testDB.Model(inactive).Update("is_active", false).Error)

	combos, err := repo.FindActiveValid(now)
	require.NoError(t, err)
	require.Len(t, combos, 2)

	names := []string{combos[0].Name, combos[1].Name}
	assert.Contains(t, names, "Open")
	assert.Contains(t, names, "Windowed")

	// Items and products are preloaded
	for _, combo := range combos {
		require.Len(t, combo.Items, 2)
		assert.NotNil(t, combo.Items[0].Product)
	}
}

func TestComboRepository_ReplaceItems(t *testing.T) {
	repo, testDB, products := setupComboRepoTest(t)

	combo := &model.Combo{Name: "Bundle", Description: "d", IsActive: true, OriginalPrice: 800, ComboPrice: 700,
		Items: []model.ComboItem{{ProductID: products[0].ID, Quantity: 1}, {ProductID: products[1].ID, Quantity: 1}}}
	require.NoError(t, repo.Create(combo))

	require.NoError(t, repo.ReplaceItems(combo.ID, []model.ComboItem{
		{ProductID: products[1].ID, Quantity: 2},
		{ProductID: products[2].ID, Quantity: 3},
	}))

	found, err := repo.FindByID(combo.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)

	var total int64
	testDB.Model(&model.ComboItem{}).Where("combo_id = ?", combo.ID).Count(&total)
	assert.Equal(t, int64(2), total)
}

func TestComboRepository_DeactivateExpired(t *testing.T) {
	repo, _, products := setupComboRepoTest(t)

	past := time.Now().Add(-time.Hour)
	expired := &model.Combo{Name: "Expired", Description: "d", IsActive: true, ValidUntil: &past,
		OriginalPrice: 800, ComboPrice: 700,
		Items: []model.ComboItem{{ProductID: products[0].ID, Quantity: 1}, {ProductID: products[1].ID, Quantity: 1}}}
	open := &model.Combo{Name: "Open", Description: "d", IsActive: true, OriginalPrice: 800, ComboPrice: 700,
		Items: []model.ComboItem{{ProductID: products[0].ID, Quantity: 1}, {ProductID: products[2].ID, Quantity: 1}}}
	require.NoError(t, repo.Create(expired))
	require.NoError(t, repo.Create(open))

	count, err := repo.DeactivateExpired(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	found, err := repo.FindByID(expired.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	found, err = repo.FindByID(open.ID)
	require.NoError(t, err)
	assert.True(t, found.IsActive)
}
