package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/service"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/furnimart/furnimart-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryService service.CategoryService
	objectStore     storage.ObjectStorage
}

func NewCategoryController(categoryService service.CategoryService, objectStore storage.ObjectStorage) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
		objectStore:     objectStore,
	}
}

// ListCategories returns active categories with live product counts
// GET /api/categories
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.categoryService.ListActive()
	if err != nil {
		log.Error("Failed to fetch categories", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetCategoryBySlug returns one active category
// GET /api/categories/:slug
func (ctrl *CategoryController) GetCategoryBySlug(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	slug := c.Param("slug")
	category, err := ctrl.categoryService.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		log.Error("Failed to fetch category", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
	})
}

// categoryInputFromForm builds the service input from the multipart form.
// The image file, when present, is uploaded before the record is written.
func (ctrl *CategoryController) categoryInputFromForm(c *gin.Context) (service.CategoryInput, error) {
	input := service.CategoryInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}

	if v, ok := c.GetPostForm("isActive"); ok {
		active := v == "true"
		input.IsActive = &active
	}
	if v, ok := c.GetPostForm("sortOrder"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			input.SortOrder = &n
		}
	}

	header, err := c.FormFile("image")
	if err == nil && header != nil {
		result, err := uploadFormImage(c, ctrl.objectStore, header, "categories")
		if err != nil {
			return input, err
		}
		input.Image = &model.Image{URL: result.URL, Key: result.Key}
	}

	return input, nil
}

// CreateCategory creates a category (admin)
// POST /api/categories
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	input, err := ctrl.categoryInputFromForm(c)
	if err != nil {
		log.Warn("Category image upload failed", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.UploadFailed, "Image upload failed")
		return
	}
	if input.Name == "" {
		apperrors.RespondWithValidationError(c, map[string]string{
			"name": "This field is required",
		})
		return
	}

	category, err := ctrl.categoryService.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrCategoryExists) {
			apperrors.Conflict(c, apperrors.CategoryNameExists, "Category already exists")
			return
		}
		log.Error("Failed to create category", err, map[string]interface{}{
			"name": input.Name,
		})
		apperrors.InternalError(c, err)
		return
	}

	log.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"slug":        category.Slug,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully",
		"category": category,
	})
}

// UpdateCategory updates a category (admin)
// PUT /api/categories/:id
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid category ID")
		return
	}

	input, err := ctrl.categoryInputFromForm(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.UploadFailed, "Image upload failed")
		return
	}

	category, err := ctrl.categoryService.Update(id, input)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		if errors.Is(err, service.ErrCategoryExists) {
			apperrors.Conflict(c, apperrors.CategoryNameExists, "Category already exists")
			return
		}
		log.Error("Failed to update category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// DeleteCategory removes a category; products keep their reference (admin)
// DELETE /api/categories/:id
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid category ID")
		return
	}

	if _, err := ctrl.categoryService.Delete(id); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		log.Error("Failed to delete category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted successfully",
	})
}
