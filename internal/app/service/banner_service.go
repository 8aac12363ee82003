package service

import (
	"context"
	"errors"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/storage"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrBannerNotFound = errors.New("banner not found")

type BannerInput struct {
	Title      string
	Subtitle   string
	Image      *model.Image
	Link       string
	ButtonText string
	IsActive   *bool
	SortOrder  *int
}

type BannerService interface {
	ListActive() ([]model.Banner, error)
	GetByID(id uint) (*model.Banner, error)
	Create(input BannerInput) (*model.Banner, error)
	Update(id uint, input BannerInput) (*model.Banner, error)
	Delete(id uint) (*model.Banner, error)
}

type bannerService struct {
	bannerRepo  repository.BannerRepository
	objectStore storage.ObjectStorage
}

func NewBannerService(bannerRepo repository.BannerRepository, objectStore storage.ObjectStorage) BannerService {
	return &bannerService{
		bannerRepo:  bannerRepo,
		objectStore: objectStore,
	}
}

func (s *bannerService) ListActive() ([]model.Banner, error) {
	return s.bannerRepo.FindActive()
}

func (s *bannerService) GetByID(id uint) (*model.Banner, error) {
	banner, err := s.bannerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}
	return banner, nil
}

func (s *bannerService) Create(input BannerInput) (*model.Banner, error) {
	logger.Info("Creating banner", map[string]interface{}{
		"title": input.Title,
	})

	banner := &model.Banner{
		Title:      input.Title,
		Subtitle:   input.Subtitle,
		Link:       input.Link,
		ButtonText: input.ButtonText,
		IsActive:   true,
	}
	if input.Image != nil {
		banner.Image = *input.Image
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		banner.SortOrder = *input.SortOrder
	}

	if err := s.bannerRepo.Create(banner); err != nil {
		return nil, err
	}

	logger.Info("Banner created successfully", map[string]interface{}{
		"banner_id": banner.ID,
	})
	return banner, nil
}

func (s *bannerService) Update(id uint, input BannerInput) (*model.Banner, error) {
	banner, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		banner.Title = input.Title
	}
	if input.Subtitle != "" {
		banner.Subtitle = input.Subtitle
	}
	replacedKey := ""
	if input.Image != nil {
		if banner.Image.Key != "" && banner.Image.Key != input.Image.Key {
			replacedKey = banner.Image.Key
		}
		banner.Image = *input.Image
	}
	if input.Link != "" {
		banner.Link = input.Link
	}
	if input.ButtonText != "" {
		banner.ButtonText = input.ButtonText
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		banner.SortOrder = *input.SortOrder
	}

	if err := s.bannerRepo.Update(banner); err != nil {
		return nil, err
	}

	s.cleanupImage(replacedKey, banner.ID)

	logger.Info("Banner updated successfully", map[string]interface{}{
		"banner_id": banner.ID,
	})
	return banner, nil
}

// cleanupImage removes a stored image best-effort; failures are logged only.
func (s *bannerService) cleanupImage(key string, bannerID uint) {
	if s.objectStore == nil || key == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.objectStore.Delete(ctx, key); err != nil {
			logger.Warn("Failed to clean up banner image", map[string]interface{}{
				"banner_id": bannerID,
				"key":       key,
			})
		}
	}()
}

// Delete removes the banner record first, then cleans up its image in the
// background; cleanup failures are logged only.
func (s *bannerService) Delete(id uint) (*model.Banner, error) {
	banner, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.bannerRepo.Delete(id); err != nil {
		return nil, err
	}

	s.cleanupImage(banner.Image.Key, id)

	logger.Info("Banner deleted", map[string]interface{}{
		"banner_id": id,
	})
	return banner, nil
}
