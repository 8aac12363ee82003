package repository

import (
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

type ComboRepository interface {
	Create(combo *model.Combo) error
	FindActiveValid(now time.Time) ([]model.Combo, error)
	FindByID(id uint) (*model.Combo, error)
	Update(combo *model.Combo) error
	ReplaceItems(comboID uint, items []model.ComboItem) error
	Delete(id uint) error
	DeactivateExpired(now time.Time) (int64, error)
}

type comboRepository struct {
	db *gorm.DB
}

func NewComboRepository(db *gorm.DB) ComboRepository {
	return &comboRepository{db: db}
}

func (r *comboRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Combo{}).
		Preload("Items.Product").
		Preload("Items.Product.Images")
}

func (r *comboRepository) Create(combo *model.Combo) error {
	logger.Debug("Creating combo in database", map[string]interface{}{
		"name":        combo.Name,
		"items_count": len(combo.Items),
	})

	if err := r.db.Create(combo).Error; err != nil {
		logger.Error("Failed to create combo in database", err, map[string]interface{}{
			"name": combo.Name,
		})
		return err
	}
	return nil
}

// FindActiveValid lists active combos whose validity window is open at the
// given instant (no valid_until, or valid_until in the future).
func (r *comboRepository) FindActiveValid(now time.Time) ([]model.Combo, error) {
	var combos []model.Combo
	err := r.baseQuery().
		Where("is_active = ?", true).
		Where("valid_until IS NULL OR valid_until >= ?", now).
		Order("created_at DESC").
		Find(&combos).Error
	if err != nil {
		logger.Error("Failed to list active combos", err)
		return nil, err
	}
	return combos, nil
}

func (r *comboRepository) FindByID(id uint) (*model.Combo, error) {
	var combo model.Combo
	if err := r.baseQuery().First(&combo, id).Error; err != nil {
		return nil, err
	}
	return &combo, nil
}

func (r *comboRepository) Update(combo *model.Combo) error {
	logger.Debug("Updating combo in database", map[string]interface{}{
		"combo_id": combo.ID,
		"name":     combo.Name,
	})

	// Items are replaced separately; Save here must not touch child rows.
	if err := r.db.Omit("Items").Save(combo).Error; err != nil {
		logger.Error("Failed to update combo in database", err, map[string]interface{}{
			"combo_id": combo.ID,
		})
		return err
	}
	return nil
}

// ReplaceItems swaps the full product list of a bundle.
func (r *comboRepository) ReplaceItems(comboID uint, items []model.ComboItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("combo_id = ?", comboID).Delete(&model.ComboItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].ComboID = comboID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *comboRepository) Delete(id uint) error {
	logger.Debug("Deleting combo from database", map[string]interface{}{
		"combo_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("combo_id = ?", id).Delete(&model.ComboItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Combo{}, id).Error
	})
}

// DeactivateExpired flips is_active off for combos whose validity date has
// passed. Used by the scheduled sweep; listing filters by wall clock anyway,
// so this only keeps the admin view tidy.
func (r *comboRepository) DeactivateExpired(now time.Time) (int64, error) {
	result := r.db.Model(&model.Combo{}).
		Where("is_active = ?", true).
		Where("valid_until IS NOT NULL AND valid_until < ?", now).
		Update("is_active", false)
	if result.Error != nil {
		logger.Error("Failed to deactivate expired combos", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
