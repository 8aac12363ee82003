package repository

import (
	"fmt"
	"strings"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

// productSortFields is the allow-list of client-supplied sort keys. Unknown
// fields fall back to created_at rather than being passed through to the
// query verbatim.
var productSortFields = map[string]string{
	"created_at": "created_at",
	"createdAt":  "created_at",
	"price":      "price",
	"name":       "name",
	"rating":     "rating",
	"sort_order": "sort_order",
	"sortOrder":  "sort_order",
}

type ProductFilter struct {
	CategoryID    *uint
	Search        string
	NewOnly       bool
	TopRatedOnly  bool
	ActiveOnly    bool
	SortBy        string
	SortAscending bool
	Limit         int
	Offset        int
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindWithFilter(filter ProductFilter) ([]model.Product, int64, error)
	FindByID(id uint) (*model.Product, error)
	FindBySlug(slug string, activeOnly bool) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
	FindImage(productID, imageID uint) (*model.ProductImage, error)
	AddImages(productID uint, images []model.ProductImage) error
	DeleteImage(productID, imageID uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Product{}).
		Preload("Category").
		Preload("Images")
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name":        product.Name,
		"slug":        product.Slug,
		"category_id": product.CategoryID,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name": product.Name,
			"slug": product.Slug,
		})
		return err
	}
	return nil
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, int64, error) {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"category_id": filter.CategoryID,
		"search":      filter.Search,
		"new_only":    filter.NewOnly,
		"top_rated":   filter.TopRatedOnly,
		"sort_by":     filter.SortBy,
		"limit":       filter.Limit,
		"offset":      filter.Offset,
	})

	query := r.db.Model(&model.Product{})

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", strings.ToLower(filter.Search))
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if filter.NewOnly {
		query = query.Where("is_new_product = ?", true)
	}

	if filter.TopRatedOnly {
		query = query.Where("is_top_rated = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count products", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, 0, err
	}

	column, ok := productSortFields[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortAscending {
		direction = "ASC"
	}
	query = query.Order(column + " " + direction).
		Preload("Category").
		Preload("Images")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to find products with filter", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.baseQuery().First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindBySlug(slug string, activeOnly bool) (*model.Product, error) {
	query := r.baseQuery().Where("slug = ?", slug)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var product model.Product
	if err := query.First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

func (r *productRepository) Delete(id uint) error {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"product_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Product{}, id).Error; err != nil {
			logger.Error("Failed to delete product from database", err, map[string]interface{}{
				"product_id": id,
			})
			return err
		}
		return nil
	})
}

func (r *productRepository) FindImage(productID, imageID uint) (*model.ProductImage, error) {
	var image model.ProductImage
	err := r.db.Where("product_id = ? AND id = ?", productID, imageID).First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *productRepository) AddImages(productID uint, images []model.ProductImage) error {
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		images[i].ProductID = productID
	}
	return r.db.Create(&images).Error
}

func (r *productRepository) DeleteImage(productID, imageID uint) error {
	return r.db.Where("product_id = ? AND id = ?", productID, imageID).
		Delete(&model.ProductImage{}).Error
}
