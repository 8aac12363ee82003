package service

import (
	"errors"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

// SettingsInput carries the editable shop settings. Nil pointers mean "leave
// unchanged".
type SettingsInput struct {
	WhatsappNumber *string
	ShopAddress    *string
	MapEmbedCode   *string
	ShopEmail      *string
	ShopPhone      *string
	SocialMedia    *model.SocialMedia
	BusinessHours  *model.BusinessHours
}

type SettingsService interface {
	Get() (*model.Settings, error)
	Update(input SettingsInput) (*model.Settings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

// Get returns the settings singleton, creating it empty on first access.
func (s *settingsService) Get() (*model.Settings, error) {
	settings, err := s.settingsRepo.Get()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &model.Settings{}
	if err := s.settingsRepo.Upsert(fresh); err != nil {
		logger.Error("Failed to initialize settings", err)
		return nil, err
	}
	logger.Info("Settings initialized with defaults", nil)
	return fresh, nil
}

func (s *settingsService) Update(input SettingsInput) (*model.Settings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	if input.WhatsappNumber != nil {
		settings.WhatsappNumber = *input.WhatsappNumber
	}
	if input.ShopAddress != nil {
		settings.ShopAddress = *input.ShopAddress
	}
	if input.MapEmbedCode != nil {
		settings.MapEmbedCode = *input.MapEmbedCode
	}
	if input.ShopEmail != nil {
		settings.ShopEmail = *input.ShopEmail
	}
	if input.ShopPhone != nil {
		settings.ShopPhone = *input.ShopPhone
	}
	if input.SocialMedia != nil {
		settings.SocialMedia = *input.SocialMedia
	}
	if input.BusinessHours != nil {
		settings.BusinessHours = *input.BusinessHours
	}

	if err := s.settingsRepo.Upsert(settings); err != nil {
		return nil, err
	}

	logger.Info("Settings updated successfully", nil)
	return settings, nil
}
