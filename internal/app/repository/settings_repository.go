package repository

import (
	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

// SettingsRepository stores the site-wide configuration singleton. Every
// access goes through the fixed primary key so at most one row can exist.
type SettingsRepository interface {
	Get() (*model.Settings, error)
	Upsert(settings *model.Settings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get() (*model.Settings, error) {
	var settings model.Settings
	if err := r.db.First(&settings, model.SettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Upsert(settings *model.Settings) error {
	settings.ID = model.SettingsID

	logger.Debug("Upserting settings singleton", map[string]interface{}{
		"settings_id": settings.ID,
	})

	if err := r.db.Save(settings).Error; err != nil {
		logger.Error("Failed to upsert settings", err)
		return err
	}
	return nil
}
