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

type BannerController struct {
	bannerService service.BannerService
	objectStore   storage.ObjectStorage
}

func NewBannerController(bannerService service.BannerService, objectStore storage.ObjectStorage) *BannerController {
	return &BannerController{
		bannerService: bannerService,
		objectStore:   objectStore,
	}
}

// ListBanners returns active banners in display order
// GET /api/banners
func (ctrl *BannerController) ListBanners(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	banners, err := ctrl.bannerService.ListActive()
	if err != nil {
		log.Error("Failed to fetch banners", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"banners": banners,
		"count":   len(banners),
	})
}

func (ctrl *BannerController) bannerInputFromForm(c *gin.Context) (service.BannerInput, error) {
	input := service.BannerInput{
		Title:      c.PostForm("title"),
		Subtitle:   c.PostForm("subtitle"),
		Link:       c.PostForm("link"),
		ButtonText: c.PostForm("buttonText"),
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
		result, err := uploadFormImage(c, ctrl.objectStore, header, "banners")
		if err != nil {
			return input, err
		}
		input.Image = &model.Image{URL: result.URL, Key: result.Key}
	}

	return input, nil
}

// CreateBanner creates a banner (admin)
// POST /api/banners
func (ctrl *BannerController) CreateBanner(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	input, err := ctrl.bannerInputFromForm(c)
	if err != nil {
		log.Warn("Banner image upload failed", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.UploadFailed, "Image upload failed")
		return
	}
	if input.Title == "" {
		apperrors.RespondWithValidationError(c, map[string]string{
			"title": "This field is required",
		})
		return
	}

	banner, err := ctrl.bannerService.Create(input)
	if err != nil {
		log.Error("Failed to create banner", err, map[string]interface{}{
			"title": input.Title,
		})
		apperrors.InternalError(c, err)
		return
	}

	log.Info("Banner created", map[string]interface{}{
		"banner_id": banner.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Banner created successfully",
		"banner":  banner,
	})
}

// UpdateBanner merge-updates a banner (admin)
// PUT /api/banners/:id
func (ctrl *BannerController) UpdateBanner(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid banner ID")
		return
	}

	input, err := ctrl.bannerInputFromForm(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.UploadFailed, "Image upload failed")
		return
	}

	banner, err := ctrl.bannerService.Update(id, input)
	if err != nil {
		if errors.Is(err, service.ErrBannerNotFound) {
			apperrors.NotFound(c, apperrors.BannerNotFound, "Banner not found")
			return
		}
		log.Error("Failed to update banner", err, map[string]interface{}{
			"banner_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Banner updated successfully",
		"banner":  banner,
	})
}

// DeleteBanner removes a banner (admin)
// DELETE /api/banners/:id
func (ctrl *BannerController) DeleteBanner(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid banner ID")
		return
	}

	if _, err := ctrl.bannerService.Delete(id); err != nil {
		if errors.Is(err, service.ErrBannerNotFound) {
			apperrors.NotFound(c, apperrors.BannerNotFound, "Banner not found")
			return
		}
		log.Error("Failed to delete banner", err, map[string]interface{}{
			"banner_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Banner deleted successfully",
	})
}
