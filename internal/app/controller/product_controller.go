package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/service"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/furnimart/furnimart-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

const defaultProductPageSize = 12

type ProductController struct {
	productService service.ProductService
	objectStore    storage.ObjectStorage
}

func NewProductController(productService service.ProductService, objectStore storage.ObjectStorage) *ProductController {
	return &ProductController{
		productService: productService,
		objectStore:    objectStore,
	}
}

// ListProducts returns active products with filters and pagination
// GET /api/products
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	params := parseListParams(c, defaultProductPageSize)
	opts := service.ProductListOptions{
		Search:        c.Query("search"),
		NewOnly:       c.Query("newProducts") == "true",
		TopRatedOnly:  c.Query("topRated") == "true",
		ActiveOnly:    true,
		SortBy:        params.SortBy,
		SortAscending: params.SortAscending,
		Page:          params.Page,
		PerPage:       params.Limit,
	}

	if v := c.Query("category"); v != "" {
		categoryID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid category ID")
			return
		}
		id := uint(categoryID)
		opts.CategoryID = &id
	}

	products, total, err := ctrl.productService.List(opts)
	if err != nil {
		log.Error("Failed to fetch products", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"pagination": newPagination(params.Page, params.Limit, total),
	})
}

// GetProductBySlug returns one active product with its category
// GET /api/products/:slug
func (ctrl *ProductController) GetProductBySlug(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	slug := c.Param("slug")
	product, err := ctrl.productService.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// errInvalidJSONField marks a structured form field that failed to decode.
// These surface as a generic server error, matching the public API contract.
var errInvalidJSONField = errors.New("invalid JSON form field")

// productInputFromForm builds the service input from the multipart form.
// Structured sub-fields (dimensions, materials, offers) arrive JSON-encoded;
// image files are uploaded before the record is written.
func (ctrl *ProductController) productInputFromForm(c *gin.Context) (service.ProductInput, error) {
	input := service.ProductInput{
		Name:           c.PostForm("name"),
		Description:    c.PostForm("description"),
		SeoTitle:       c.PostForm("seoTitle"),
		SeoDescription: c.PostForm("seoDescription"),
	}

	for field, target := range map[string]**float64{
		"price":         &input.Price,
		"originalPrice": &input.OriginalPrice,
		"weight":        &input.Weight,
		"rating":        &input.Rating,
	} {
		if v, ok := c.GetPostForm(field); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*target = &f
			}
		}
	}

	for field, target := range map[string]**int{
		"stockQuantity": &input.StockQuantity,
		"reviewCount":   &input.ReviewCount,
		"sortOrder":     &input.SortOrder,
	} {
		if v, ok := c.GetPostForm(field); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*target = &n
			}
		}
	}

	for field, target := range map[string]**bool{
		"inStock":      &input.InStock,
		"isNewProduct": &input.IsNewProduct,
		"isTopRated":   &input.IsTopRated,
		"isActive":     &input.IsActive,
	} {
		if v, ok := c.GetPostForm(field); ok {
			b := v == "true"
			*target = &b
		}
	}

	if v, ok := c.GetPostForm("category"); ok {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			categoryID := uint(id)
			input.CategoryID = &categoryID
		}
	}

	if v, ok := c.GetPostForm("dimensions"); ok && v != "" {
		var dims model.Dimensions
		if err := json.Unmarshal([]byte(v), &dims); err != nil {
			return input, fmt.Errorf("%w: dimensions: %v", errInvalidJSONField, err)
		}
		input.Dimensions = &dims
	}
	if v, ok := c.GetPostForm("materials"); ok && v != "" {
		var materials []string
		if err := json.Unmarshal([]byte(v), &materials); err != nil {
			return input, fmt.Errorf("%w: materials: %v", errInvalidJSONField, err)
		}
		input.Materials = materials
	}
	if v, ok := c.GetPostForm("offers"); ok && v != "" {
		var offers []model.Offer
		if err := json.Unmarshal([]byte(v), &offers); err != nil {
			return input, fmt.Errorf("%w: offers: %v", errInvalidJSONField, err)
		}
		input.Offers = offers
	}

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		files := form.File["images"]
		if len(files) > maxImageFiles {
			files = files[:maxImageFiles]
		}
		for _, header := range files {
			result, err := uploadFormImage(c, ctrl.objectStore, header, "products")
			if err != nil {
				return input, err
			}
			input.Images = append(input.Images, model.ProductImage{
				URL: result.URL,
				Key: result.Key,
				Alt: input.Name,
			})
		}
	}

	return input, nil
}

func (ctrl *ProductController) respondFormError(c *gin.Context, err error) {
	log := middleware.GetLoggerFromContext(c)
	if errors.Is(err, errInvalidJSONField) {
		log.Error("Failed to decode structured product field", err, nil)
		apperrors.InternalError(c, err)
		return
	}
	log.Warn("Product image upload failed", map[string]interface{}{
		"error": err.Error(),
	})
	apperrors.BadRequest(c, apperrors.UploadFailed, "Image upload failed")
}

// CreateProduct creates a product with up to five images (admin)
// POST /api/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	input, err := ctrl.productInputFromForm(c)
	if err != nil {
		ctrl.respondFormError(c, err)
		return
	}

	fields := map[string]string{}
	if input.Name == "" {
		fields["name"] = "This field is required"
	}
	if input.Description == "" {
		fields["description"] = "This field is required"
	}
	if input.Price == nil || *input.Price <= 0 {
		fields["price"] = "Must be greater than zero"
	}
	if input.CategoryID == nil {
		fields["category"] = "This field is required"
	}
	if len(fields) > 0 {
		apperrors.RespondWithValidationError(c, fields)
		return
	}

	product, err := ctrl.productService.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
		case errors.Is(err, service.ErrProductExists):
			apperrors.Conflict(c, apperrors.ProductSlugExists, "A product with this name already exists")
		default:
			log.Error("Failed to create product", err, map[string]interface{}{
				"name": input.Name,
			})
			apperrors.InternalError(c, err)
		}
		return
	}

	log.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct merge-updates a product; new images are appended (admin)
// PUT /api/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	input, err := ctrl.productInputFromForm(c)
	if err != nil {
		ctrl.respondFormError(c, err)
		return
	}

	product, err := ctrl.productService.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		case errors.Is(err, service.ErrCategoryNotFound):
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
		case errors.Is(err, service.ErrProductExists):
			apperrors.Conflict(c, apperrors.ProductSlugExists, "A product with this name already exists")
		default:
			log.Error("Failed to update product", err, map[string]interface{}{
				"product_id": id,
			})
			apperrors.InternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct removes a product; media cleanup runs in the background (admin)
// DELETE /api/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	if _, err := ctrl.productService.Delete(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// DeleteProductImage removes one image of a product (admin)
// DELETE /api/products/:id/images/:imageId
func (ctrl *ProductController) DeleteProductImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}
	imageID, ok := parseIDParam(c, "imageId")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid image ID")
		return
	}

	if err := ctrl.productService.DeleteImage(id, imageID); err != nil {
		if errors.Is(err, service.ErrProductImageMissing) {
			apperrors.NotFound(c, apperrors.ProductImageNotFound, "Product image not found")
			return
		}
		log.Error("Failed to delete product image", err, map[string]interface{}{
			"product_id": id,
			"image_id":   imageID,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image deleted successfully",
	})
}
