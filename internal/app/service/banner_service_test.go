package service

import (
	"testing"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupBannerServiceTest(t *testing.T) (BannerService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	return NewBannerService(repository.NewBannerRepository(testDB), nil), testDB
}

func intPtr(v int) *int { return &v }

func TestBannerService_ListActive_OrderedAndFiltered(t *testing.T) {
	bannerService, testDB := setupBannerServiceTest(t)

	second, err := bannerService.Create(BannerInput{Title: "Second", SortOrder: intPtr(2)})
	require.NoError(t, err)
	first, err := bannerService.Create(BannerInput{Title: "First", SortOrder: intPtr(1)})
	require.NoError(t, err)
	hidden, err := bannerService.Create(BannerInput{Title: "Hidden", SortOrder: intPtr(0)})
	require.NoError(t, err)
	require.NoError(t, testDB.Model(hidden).Update("is_active", false).Error)

	banners, err := bannerService.ListActive()
	require.NoError(t, err)
	require.Len(t, banners, 2)
	assert.Equal(t, first.ID, banners[0].ID)
	assert.Equal(t, second.ID, banners[1].ID)
}

func TestBannerService_Update_PartialMerge(t *testing.T) {
	bannerService, _ := setupBannerServiceTest(t)

	banner, err := bannerService.Create(BannerInput{
		Title:      "Summer Sale",
		Subtitle:   "Up to 40% off",
		Link:       "/sale",
		ButtonText: "Shop now",
	})
	require.NoError(t, err)

	updated, err := bannerService.Update(banner.ID, BannerInput{
		Subtitle: "Up to 50% off",
	})
	require.NoError(t, err)
	assert.Equal(t, "Summer Sale", updated.Title)
	assert.Equal(t, "Up to 50% off", updated.Subtitle)
	assert.Equal(t, "/sale", updated.Link)
}

func TestBannerService_Delete(t *testing.T) {
	bannerService, _ := setupBannerServiceTest(t)

	banner, err := bannerService.Create(BannerInput{Title: "Summer Sale"})
	require.NoError(t, err)

	deleted, err := bannerService.Delete(banner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summer Sale", deleted.Title)

	_, err = bannerService.GetByID(banner.ID)
	assert.ErrorIs(t, err, ErrBannerNotFound)

	_, err = bannerService.Delete(banner.ID)
	assert.ErrorIs(t, err, ErrBannerNotFound)
}

func TestBannerService_Update_RemovesReplacedImage(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	store := &recordingObjectStore{}
	bannerService := NewBannerService(repository.NewBannerRepository(testDB), store)

	banner, err := bannerService.Create(BannerInput{
		Title: "Summer Sale",
		Image: &model.Image{URL: "https://cdn.example.com/banners/old.webp", Key: "banners/old.webp"},
	})
	require.NoError(t, err)

	updated, err := bannerService.Update(banner.ID, BannerInput{
		Image: &model.Image{URL: "https://cdn.example.com/banners/new.webp", Key: "banners/new.webp"},
	})
	require.NoError(t, err)
	assert.Equal(t, "banners/new.webp", updated.Image.Key)

	assert.Eventually(t, func() bool {
		keys := store.deletedKeys()
		return len(keys) == 1 && keys[0] == "banners/old.webp"
	}, time.Second, 10*time.Millisecond)
}

func TestBannerService_Delete_CleansUpImage(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	store := &recordingObjectStore{}
	bannerService := NewBannerService(repository.NewBannerRepository(testDB), store)

	banner, err := bannerService.Create(BannerInput{
		Title: "Summer Sale",
		Image: &model.Image{URL: "https://cdn.example.com/banners/a.webp", Key: "banners/a.webp"},
	})
	require.NoError(t, err)

	_, err = bannerService.Delete(banner.ID)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		keys := store.deletedKeys()
		return len(keys) == 1 && keys[0] == "banners/a.webp"
	}, time.Second, 10*time.Millisecond)
}
