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

var (
	ErrComboNotFound       = errors.New("combo not found")
	ErrComboTooFewProducts = errors.New("combo requires at least two products")
	ErrComboUnknownProduct = errors.New("combo references unknown product")
)

type ComboItemInput struct {
	ProductID uint
	Quantity  int
}

// ComboInput carries the writable bundle fields from the API layer. Nil
// pointers mean "leave unchanged" on update; a nil Items slice keeps the
// existing product list.
type ComboInput struct {
	Name               string
	Description        string
	Items              []ComboItemInput
	DiscountPercentage *float64
	OriginalPrice      *float64
	ComboPrice         *float64
	Image              *model.Image
	IsActive           *bool
	ValidUntil         *time.Time
	ClearValidUntil    bool
}

type ComboService interface {
	ListActive() ([]model.Combo, error)
	GetByID(id uint) (*model.Combo, error)
	Create(input ComboInput) (*model.Combo, error)
	Update(id uint, input ComboInput) (*model.Combo, error)
	Delete(id uint) (*model.Combo, error)
	DeactivateExpired() (int64, error)
}

type comboService struct {
	comboRepo   repository.ComboRepository
	productRepo repository.ProductRepository
	objectStore storage.ObjectStorage
}

func NewComboService(
	comboRepo repository.ComboRepository,
	productRepo repository.ProductRepository,
	objectStore storage.ObjectStorage,
) ComboService {
	return &comboService{
		comboRepo:   comboRepo,
		productRepo: productRepo,
		objectStore: objectStore,
	}
}

func (s *comboService) ListActive() ([]model.Combo, error) {
	return s.comboRepo.FindActiveValid(time.Now())
}

func (s *comboService) GetByID(id uint) (*model.Combo, error) {
	combo, err := s.comboRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComboNotFound
		}
		return nil, err
	}
	return combo, nil
}

func (s *comboService) buildItems(inputs []ComboItemInput) ([]model.ComboItem, error) {
	if len(inputs) < model.MinComboProducts {
		return nil, ErrComboTooFewProducts
	}

	items := make([]model.ComboItem, 0, len(inputs))
	for _, in := range inputs {
		if _, err := s.productRepo.FindByID(in.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("Combo references unknown product", map[string]interface{}{
					"product_id": in.ProductID,
				})
				return nil, ErrComboUnknownProduct
			}
			return nil, err
		}
		quantity := in.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items = append(items, model.ComboItem{
			ProductID: in.ProductID,
			Quantity:  quantity,
		})
	}
	return items, nil
}

func (s *comboService) Create(input ComboInput) (*model.Combo, error) {
	logger.Info("Creating combo", map[string]interface{}{
		"name":        input.Name,
		"items_count": len(input.Items),
	})

	items, err := s.buildItems(input.Items)
	if err != nil {
		return nil, err
	}

	combo := &model.Combo{
		Name:        input.Name,
		Description: input.Description,
		Items:       items,
		IsActive:    true,
		ValidUntil:  input.ValidUntil,
	}
	if input.DiscountPercentage != nil {
		combo.DiscountPercentage = *input.DiscountPercentage
	}
	if input.OriginalPrice != nil {
		combo.OriginalPrice = *input.OriginalPrice
	}
	if input.ComboPrice != nil {
		combo.ComboPrice = *input.ComboPrice
	}
	if input.Image != nil {
		combo.Image = *input.Image
	}
	if input.IsActive != nil {
		combo.IsActive = *input.IsActive
	}
	combo.RecalculatePrice()

	if err := s.comboRepo.Create(combo); err != nil {
		return nil, err
	}

	logger.Info("Combo created successfully", map[string]interface{}{
		"combo_id":    combo.ID,
		"combo_price": combo.ComboPrice,
	})
	return s.GetByID(combo.ID)
}

func (s *comboService) Update(id uint, input ComboInput) (*model.Combo, error) {
	combo, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Items != nil {
		items, err := s.buildItems(input.Items)
		if err != nil {
			return nil, err
		}
		if err := s.comboRepo.ReplaceItems(id, items); err != nil {
			return nil, err
		}
	}

	if input.Name != "" {
		combo.Name = input.Name
	}
	if input.Description != "" {
		combo.Description = input.Description
	}
	if input.DiscountPercentage != nil {
		combo.DiscountPercentage = *input.DiscountPercentage
	}
	if input.OriginalPrice != nil {
		combo.OriginalPrice = *input.OriginalPrice
	}
	if input.ComboPrice != nil {
		combo.ComboPrice = *input.ComboPrice
	}
	replacedKey := ""
	if input.Image != nil {
		if combo.Image.Key != "" && combo.Image.Key != input.Image.Key {
			replacedKey = combo.Image.Key
		}
		combo.Image = *input.Image
	}
	if input.IsActive != nil {
		combo.IsActive = *input.IsActive
	}
	if input.ClearValidUntil {
		combo.ValidUntil = nil
	} else if input.ValidUntil != nil {
		combo.ValidUntil = input.ValidUntil
	}
	combo.RecalculatePrice()

	if err := s.comboRepo.Update(combo); err != nil {
		return nil, err
	}

	s.cleanupImage(replacedKey, combo.ID)

	logger.Info("Combo updated successfully", map[string]interface{}{
		"combo_id": combo.ID,
	})
	return s.GetByID(id)
}

// cleanupImage removes a stored image best-effort; failures are logged only.
func (s *comboService) cleanupImage(key string, comboID uint) {
	if s.objectStore == nil || key == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.objectStore.Delete(ctx, key); err != nil {
			logger.Warn("Failed to clean up combo image", map[string]interface{}{
				"combo_id": comboID,
				"key":      key,
			})
		}
	}()
}

// Delete removes the bundle record first, then cleans up its image in the
// background; cleanup failures are logged only.
func (s *comboService) Delete(id uint) (*model.Combo, error) {
	combo, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.comboRepo.Delete(id); err != nil {
		return nil, err
	}

	s.cleanupImage(combo.Image.Key, id)

	logger.Info("Combo deleted", map[string]interface{}{
		"combo_id": id,
		"name":     combo.Name,
	})
	return combo, nil
}

// DeactivateExpired is invoked by the scheduler to retire bundles whose
// validity date has passed.
func (s *comboService) DeactivateExpired() (int64, error) {
	count, err := s.comboRepo.DeactivateExpired(time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info("Deactivated expired combos", map[string]interface{}{
			"count": count,
		})
	}
	return count, nil
}
