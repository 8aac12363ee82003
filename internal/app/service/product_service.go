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
	ErrProductNotFound     = errors.New("product not found")
	ErrProductExists       = errors.New("product already exists")
	ErrProductImageMissing = errors.New("product image not found")
)

type ProductListOptions struct {
	CategoryID    *uint
	CategorySlug  string
	Search        string
	NewOnly       bool
	TopRatedOnly  bool
	ActiveOnly    bool
	SortBy        string
	SortAscending bool
	Page          int
	PerPage       int
}

// ProductInput carries the writable product fields from the API layer. Nil
// pointers mean "leave unchanged" on update.
type ProductInput struct {
	Name           string
	Description    string
	Price          *float64
	OriginalPrice  *float64
	CategoryID     *uint
	Dimensions     *model.Dimensions
	Materials      []string
	Weight         *float64
	InStock        *bool
	StockQuantity  *int
	IsNewProduct   *bool
	IsTopRated     *bool
	Rating         *float64
	ReviewCount    *int
	Offers         []model.Offer
	SeoTitle       string
	SeoDescription string
	IsActive       *bool
	SortOrder      *int
	Images         []model.ProductImage
}

type ProductService interface {
	List(opts ProductListOptions) ([]model.Product, int64, error)
	GetByID(id uint) (*model.Product, error)
	GetBySlug(slug string) (*model.Product, error)
	Create(input ProductInput) (*model.Product, error)
	Update(id uint, input ProductInput) (*model.Product, error)
	Delete(id uint) (*model.Product, error)
	AddImages(productID uint, images []model.ProductImage) (*model.Product, error)
	DeleteImage(productID, imageID uint) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	objectStore  storage.ObjectStorage
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	objectStore storage.ObjectStorage,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		objectStore:  objectStore,
	}
}

func (s *productService) List(opts ProductListOptions) ([]model.Product, int64, error) {
	filter := repository.ProductFilter{
		CategoryID:    opts.CategoryID,
		Search:        opts.Search,
		NewOnly:       opts.NewOnly,
		TopRatedOnly:  opts.TopRatedOnly,
		ActiveOnly:    opts.ActiveOnly,
		SortBy:        opts.SortBy,
		SortAscending: opts.SortAscending,
	}

	if opts.CategorySlug != "" {
		category, err := s.categoryRepo.FindBySlug(opts.CategorySlug, false)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Unknown category slug matches nothing.
				return []model.Product{}, 0, nil
			}
			return nil, 0, err
		}
		filter.CategoryID = &category.ID
	}

	if opts.PerPage > 0 {
		filter.Limit = opts.PerPage
		if opts.Page > 1 {
			filter.Offset = (opts.Page - 1) * opts.PerPage
		}
	}

	products, total, err := s.productRepo.FindWithFilter(filter)
	if err != nil {
		logger.Error("Failed to list products", err)
		return nil, 0, err
	}
	return products, total, nil
}

func (s *productService) GetByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

func (s *productService) GetBySlug(slug string) (*model.Product, error) {
	product, err := s.productRepo.FindBySlug(slug, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Create(input ProductInput) (*model.Product, error) {
	logger.Info("Creating product", map[string]interface{}{
		"name": input.Name,
	})

	if input.CategoryID == nil {
		return nil, ErrCategoryNotFound
	}
	if _, err := s.categoryRepo.FindByID(*input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	product := &model.Product{
		Name:           input.Name,
		Description:    input.Description,
		CategoryID:     *input.CategoryID,
		Materials:      input.Materials,
		Offers:         input.Offers,
		SeoTitle:       input.SeoTitle,
		SeoDescription: input.SeoDescription,
		Images:         input.Images,
		InStock:        true,
		IsActive:       true,
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = *input.OriginalPrice
	}
	if input.Dimensions != nil {
		product.Dimensions = *input.Dimensions
	}
	if input.Weight != nil {
		product.Weight = *input.Weight
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.IsNewProduct != nil {
		product.IsNewProduct = *input.IsNewProduct
	}
	if input.IsTopRated != nil {
		product.IsTopRated = *input.IsTopRated
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.ReviewCount != nil {
		product.ReviewCount = *input.ReviewCount
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	}
	product.DeriveSlug()

	if err := s.productRepo.Create(product); err != nil {
		if apperrors.IsDuplicateKey(err) {
			logger.Warn("Product creation failed: duplicate slug", map[string]interface{}{
				"slug": product.Slug,
			})
			return nil, ErrProductExists
		}
		return nil, err
	}

	logger.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})
	return s.GetByID(product.ID)
}

func (s *productService) Update(id uint, input ProductInput) (*model.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil && *input.CategoryID != product.CategoryID {
		if _, err := s.categoryRepo.FindByID(*input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		product.CategoryID = *input.CategoryID
		product.Category = nil
	}

	if input.Name != "" && input.Name != product.Name {
		product.Name = input.Name
		product.DeriveSlug()
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = *input.OriginalPrice
	}
	if input.Dimensions != nil {
		product.Dimensions = *input.Dimensions
	}
	if input.Materials != nil {
		product.Materials = input.Materials
	}
	if input.Weight != nil {
		product.Weight = *input.Weight
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.IsNewProduct != nil {
		product.IsNewProduct = *input.IsNewProduct
	}
	if input.IsTopRated != nil {
		product.IsTopRated = *input.IsTopRated
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.ReviewCount != nil {
		product.ReviewCount = *input.ReviewCount
	}
	if input.Offers != nil {
		product.Offers = input.Offers
	}
	if input.SeoTitle != "" {
		product.SeoTitle = input.SeoTitle
	}
	if input.SeoDescription != "" {
		product.SeoDescription = input.SeoDescription
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	}

	if len(input.Images) > 0 {
		if err := s.productRepo.AddImages(product.ID, input.Images); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Update(product); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrProductExists
		}
		return nil, err
	}

	logger.Info("Product updated successfully", map[string]interface{}{
		"product_id": product.ID,
	})
	return s.GetByID(product.ID)
}

// Delete removes the product record first, then cleans up its stored images
// in the background. Cleanup failures are logged and never surfaced: the
// record is already gone and a retry would change nothing for the caller.
func (s *productService) Delete(id uint) (*model.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Delete(id); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(product.Images))
	for _, img := range product.Images {
		if img.Key != "" {
			keys = append(keys, img.Key)
		}
	}
	s.cleanupObjects(keys, map[string]interface{}{"product_id": id})

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
		"name":       product.Name,
	})
	return product, nil
}

func (s *productService) AddImages(productID uint, images []model.ProductImage) (*model.Product, error) {
	if _, err := s.GetByID(productID); err != nil {
		return nil, err
	}
	if err := s.productRepo.AddImages(productID, images); err != nil {
		return nil, err
	}
	return s.GetByID(productID)
}

func (s *productService) DeleteImage(productID, imageID uint) error {
	image, err := s.productRepo.FindImage(productID, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductImageMissing
		}
		return err
	}

	if err := s.productRepo.DeleteImage(productID, imageID); err != nil {
		return err
	}

	if image.Key != "" {
		s.cleanupObjects([]string{image.Key}, map[string]interface{}{
			"product_id": productID,
			"image_id":   imageID,
		})
	}
	return nil
}

func (s *productService) cleanupObjects(keys []string, fields map[string]interface{}) {
	if s.objectStore == nil || len(keys) == 0 {
		return
	}
	for _, key := range keys {
		go func(key string) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.objectStore.Delete(ctx, key); err != nil {
				details := map[string]interface{}{"key": key}
				for k, v := range fields {
					details[k] = v
				}
				logger.Warn("Failed to clean up stored object", details)
			}
		}(key)
	}
}
