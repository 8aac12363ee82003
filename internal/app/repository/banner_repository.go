package repository

import (
	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

type BannerRepository interface {
	Create(banner *model.Banner) error
	FindActive() ([]model.Banner, error)
	FindByID(id uint) (*model.Banner, error)
	Update(banner *model.Banner) error
	Delete(id uint) error
}

type bannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) Create(banner *model.Banner) error {
	logger.Debug("Creating banner in database", map[string]interface{}{
		"title": banner.Title,
	})

	if err := r.db.Create(banner).Error; err != nil {
		logger.Error("Failed to create banner in database", err, map[string]interface{}{
			"title": banner.Title,
		})
		return err
	}
	return nil
}

func (r *bannerRepository) FindActive() ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.Where("is_active = ?", true).
		Order("sort_order ASC").
		Order("created_at DESC").
		Find(&banners).Error
	if err != nil {
		logger.Error("Failed to list active banners", err)
		return nil, err
	}
	return banners, nil
}

func (r *bannerRepository) FindByID(id uint) (*model.Banner, error) {
	var banner model.Banner
	if err := r.db.First(&banner, id).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) Update(banner *model.Banner) error {
	if err := r.db.Save(banner).Error; err != nil {
		logger.Error("Failed to update banner in database", err, map[string]interface{}{
			"banner_id": banner.ID,
		})
		return err
	}
	return nil
}

func (r *bannerRepository) Delete(id uint) error {
	return r.db.Delete(&model.Banner{}, id).Error
}
