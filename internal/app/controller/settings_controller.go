package controller

import (
	"net/http"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/service"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settingsService service.SettingsService
}

func NewSettingsController(settingsService service.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// GetPublicSettings returns the storefront-facing shop settings
// GET /api/settings/public
func (ctrl *SettingsController) GetPublicSettings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	settings, err := ctrl.settingsService.Get()
	if err != nil {
		log.Error("Failed to fetch settings", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"settings": gin.H{
			"whatsapp_number": settings.WhatsappNumber,
			"shop_address":    settings.ShopAddress,
			"map_embed_code":  settings.MapEmbedCode,
			"shop_email":      settings.ShopEmail,
			"shop_phone":      settings.ShopPhone,
			"social_media":    settings.SocialMedia,
			"business_hours":  settings.BusinessHours,
		},
	})
}

// GetSettings returns the full settings record (admin)
// GET /api/settings
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	settings, err := ctrl.settingsService.Get()
	if err != nil {
		log.Error("Failed to fetch settings", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"settings": settings,
	})
}

type UpdateSettingsRequest struct {
	WhatsappNumber *string              `json:"whatsapp_number"`
	ShopAddress    *string              `json:"shop_address"`
	MapEmbedCode   *string              `json:"map_embed_code"`
	ShopEmail      *string              `json:"shop_email" binding:"omitempty,email"`
	ShopPhone      *string              `json:"shop_phone"`
	SocialMedia    *model.SocialMedia   `json:"social_media"`
	BusinessHours  *model.BusinessHours `json:"business_hours"`
}

// UpdateSettings upserts the settings singleton (admin)
// PUT /api/settings
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithBindingError(c, err)
		return
	}

	settings, err := ctrl.settingsService.Update(service.SettingsInput{
		WhatsappNumber: req.WhatsappNumber,
		ShopAddress:    req.ShopAddress,
		MapEmbedCode:   req.MapEmbedCode,
		ShopEmail:      req.ShopEmail,
		ShopPhone:      req.ShopPhone,
		SocialMedia:    req.SocialMedia,
		BusinessHours:  req.BusinessHours,
	})
	if err != nil {
		log.Error("Failed to update settings", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated successfully",
		"settings": settings,
	})
}
