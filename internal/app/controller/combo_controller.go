package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/service"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/furnimart/furnimart-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

type ComboController struct {
	comboService service.ComboService
	objectStore  storage.ObjectStorage
}

func NewComboController(comboService service.ComboService, objectStore storage.ObjectStorage) *ComboController {
	return &ComboController{
		comboService: comboService,
		objectStore:  objectStore,
	}
}

// ListCombos returns active combos still inside their validity window
// GET /api/combos
func (ctrl *ComboController) ListCombos(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	combos, err := ctrl.comboService.ListActive()
	if err != nil {
		log.Error("Failed to fetch combos", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"combos": combos,
		"count":  len(combos),
	})
}

// GetCombo returns one combo with its products
// GET /api/combos/:id
func (ctrl *ComboController) GetCombo(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid combo ID")
		return
	}

	combo, err := ctrl.comboService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrComboNotFound) {
			apperrors.NotFound(c, apperrors.ComboNotFound, "Combo not found")
			return
		}
		log.Error("Failed to fetch combo", err, map[string]interface{}{
			"combo_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"combo": combo,
	})
}

type comboProductField struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// comboInputFromForm builds the service input from the multipart form. The
// product list arrives as a JSON-encoded form field.
func (ctrl *ComboController) comboInputFromForm(c *gin.Context) (service.ComboInput, error) {
	input := service.ComboInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}

	if v, ok := c.GetPostForm("products"); ok && v != "" {
		var entries []comboProductField
		if err := json.Unmarshal([]byte(v), &entries); err != nil {
			return input, fmt.Errorf("%w: products: %v", errInvalidJSONField, err)
		}
		input.Items = make([]service.ComboItemInput, 0, len(entries))
		for _, e := range entries {
			input.Items = append(input.Items, service.ComboItemInput{
				ProductID: e.ProductID,
				Quantity:  e.Quantity,
			})
		}
	}

	for field, target := range map[string]**float64{
		"discountPercentage": &input.DiscountPercentage,
		"originalPrice":      &input.OriginalPrice,
		"comboPrice":         &input.ComboPrice,
	} {
		if v, ok := c.GetPostForm(field); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*target = &f
			}
		}
	}

	if v, ok := c.GetPostForm("isActive"); ok {
		active := v == "true"
		input.IsActive = &active
	}
	if v, ok := c.GetPostForm("validUntil"); ok {
		if v == "" {
			input.ClearValidUntil = true
		} else if t, err := time.Parse(time.RFC3339, v); err == nil {
			input.ValidUntil = &t
		}
	}

	header, err := c.FormFile("image")
	if err == nil && header != nil {
		result, err := uploadFormImage(c, ctrl.objectStore, header, "combos")
		if err != nil {
			return input, err
		}
		input.Image = &model.Image{URL: result.URL, Key: result.Key}
	}

	return input, nil
}

func (ctrl *ComboController) respondFormError(c *gin.Context, err error) {
	log := middleware.GetLoggerFromContext(c)
	if errors.Is(err, errInvalidJSONField) {
		log.Error("Failed to decode structured combo field", err, nil)
		apperrors.InternalError(c, err)
		return
	}
	log.Warn("Combo image upload failed", map[string]interface{}{
		"error": err.Error(),
	})
	apperrors.BadRequest(c, apperrors.UploadFailed, "Image upload failed")
}

// CreateCombo creates a combo bundle (admin)
// POST /api/combos
func (ctrl *ComboController) CreateCombo(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	input, err := ctrl.comboInputFromForm(c)
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
	if len(fields) > 0 {
		apperrors.RespondWithValidationError(c, fields)
		return
	}

	combo, err := ctrl.comboService.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrComboTooFewProducts):
			apperrors.BadRequest(c, apperrors.ComboTooFewProducts, "A combo requires at least two products")
		case errors.Is(err, service.ErrComboUnknownProduct):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		default:
			log.Error("Failed to create combo", err, map[string]interface{}{
				"name": input.Name,
			})
			apperrors.InternalError(c, err)
		}
		return
	}

	log.Info("Combo created", map[string]interface{}{
		"combo_id": combo.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Combo created successfully",
		"combo":   combo,
	})
}

// UpdateCombo merge-updates a combo (admin)
// PUT /api/combos/:id
func (ctrl *ComboController) UpdateCombo(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid combo ID")
		return
	}

	input, err := ctrl.comboInputFromForm(c)
	if err != nil {
		ctrl.respondFormError(c, err)
		return
	}

	combo, err := ctrl.comboService.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrComboNotFound):
			apperrors.NotFound(c, apperrors.ComboNotFound, "Combo not found")
		case errors.Is(err, service.ErrComboTooFewProducts):
			apperrors.BadRequest(c, apperrors.ComboTooFewProducts, "A combo requires at least two products")
		case errors.Is(err, service.ErrComboUnknownProduct):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		default:
			log.Error("Failed to update combo", err, map[string]interface{}{
				"combo_id": id,
			})
			apperrors.InternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Combo updated successfully",
		"combo":   combo,
	})
}

// DeleteCombo removes a combo (admin)
// DELETE /api/combos/:id
func (ctrl *ComboController) DeleteCombo(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid combo ID")
		return
	}

	if _, err := ctrl.comboService.Delete(id); err != nil {
		if errors.Is(err, service.ErrComboNotFound) {
			apperrors.NotFound(c, apperrors.ComboNotFound, "Combo not found")
			return
		}
		log.Error("Failed to delete combo", err, map[string]interface{}{
			"combo_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Combo deleted successfully",
	})
}
