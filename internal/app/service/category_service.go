package service

import (
	"context"
	"errors"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/storage"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

// CategoryInput carries the writable category fields from the API layer.
type CategoryInput struct {
	Name        string
	Description string
	Image       *model.Image
	IsActive    *bool
	SortOrder   *int
}

type CategoryService interface {
	ListActive() ([]model.Category, error)
	GetByID(id uint) (*model.Category, error)
	GetBySlug(slug string) (*model.Category, error)
	Create(input CategoryInput) (*model.Category, error)
	Update(id uint, input CategoryInput) (*model.Category, error)
	Delete(id uint) (*model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	objectStore  storage.ObjectStorage
}

func NewCategoryService(categoryRepo repository.CategoryRepository, objectStore storage.ObjectStorage) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		objectStore:  objectStore,
	}
}

func (s *categoryService) ListActive() ([]model.Category, error) {
	return s.categoryRepo.FindActiveWithCounts()
}

func (s *categoryService) GetByID(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetBySlug(slug string) (*model.Category, error) {
	category, err := s.categoryRepo.FindBySlug(slug, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Create(input CategoryInput) (*model.Category, error) {
	logger.Info("Creating category", map[string]interface{}{
		"name": input.Name,
	})

	category := &model.Category{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
	}
	if input.Image != nil {
		category.Image = *input.Image
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	category.DeriveSlug()

	if err := s.categoryRepo.Create(category); err != nil {
		if apperrors.IsDuplicateKey(err) {
			logger.Warn("Category creation failed: duplicate name or slug", map[string]interface{}{
				"name": input.Name,
				"slug": category.Slug,
			})
			return nil, ErrCategoryExists
		}
		return nil, err
	}

	logger.Info("Category created successfully", map[string]interface{}{
		"category_id": category.ID,
		"slug":        category.Slug,
	})
	return category, nil
}

func (s *categoryService) Update(id uint, input CategoryInput) (*model.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != category.Name {
		category.Name = input.Name
		category.DeriveSlug()
	}
	if input.Description != "" {
		category.Description = input.Description
	}
	replacedKey := ""
	if input.Image != nil {
		if category.Image.Key != "" && category.Image.Key != input.Image.Key {
			replacedKey = category.Image.Key
		}
		category.Image = *input.Image
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}

	s.cleanupImage(replacedKey, category.ID)

	logger.Info("Category updated successfully", map[string]interface{}{
		"category_id": category.ID,
	})
	return category, nil
}

// Delete removes the category record first, then cleans up its image in the
// background. Products referencing it keep their category_id and simply stop
// resolving a category.
func (s *categoryService) Delete(id uint) (*model.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return nil, err
	}

	s.cleanupImage(category.Image.Key, id)

	logger.Info("Category deleted", map[string]interface{}{
		"category_id": id,
		"name":        category.Name,
	})
	return category, nil
}

// cleanupImage removes a stored image best-effort; failures are logged only.
func (s *categoryService) cleanupImage(key string, categoryID uint) {
	if s.objectStore == nil || key == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.objectStore.Delete(ctx, key); err != nil {
			logger.Warn("Failed to clean up category image", map[string]interface{}{
				"category_id": categoryID,
				"key":         key,
			})
		}
	}()
}
