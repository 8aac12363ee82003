package controller

import (
	"errors"
	"net/http"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/service"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const defaultContactPageSize = 20

type ContactController struct {
	contactService service.ContactService
}

func NewContactController(contactService service.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact records a public contact message
// POST /api/contact
func (ctrl *ContactController) SubmitContact(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid contact request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithBindingError(c, err)
		return
	}

	contact, err := ctrl.contactService.Submit(service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		log.Error("Failed to submit contact message", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message submitted successfully",
		"contact": contact,
	})
}

// ListContacts returns contact messages with status filter (admin)
// GET /api/contact
func (ctrl *ContactController) ListContacts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	params := parseListParams(c, defaultContactPageSize)
	opts := service.ContactListOptions{
		SortBy:        params.SortBy,
		SortAscending: params.SortAscending,
		Page:          params.Page,
		PerPage:       params.Limit,
	}

	if v := c.Query("status"); v != "" {
		status := model.ContactStatus(v)
		if !model.ValidContactStatus(status) {
			apperrors.BadRequest(c, apperrors.ContactInvalidStatus, "Invalid contact status")
			return
		}
		opts.Status = &status
	}

	contacts, total, err := ctrl.contactService.List(opts)
	if err != nil {
		log.Error("Failed to fetch contact messages", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts":   contacts,
		"pagination": newPagination(params.Page, params.Limit, total),
	})
}

type ReplyContactRequest struct {
	Reply string `json:"reply" binding:"required"`
}

// ReplyContact records a reply and stamps who answered (admin)
// PUT /api/contact/:id/reply
func (ctrl *ContactController) ReplyContact(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid contact ID")
		return
	}

	var req ReplyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithBindingError(c, err)
		return
	}

	adminID, _ := middleware.GetAdminID(c)
	contact, err := ctrl.contactService.Reply(id, adminID, req.Reply)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			apperrors.NotFound(c, apperrors.ContactNotFound, "Contact message not found")
			return
		}
		log.Error("Failed to reply to contact message", err, map[string]interface{}{
			"contact_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reply recorded successfully",
		"contact": contact,
	})
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new resolved"`
}

// UpdateContactStatus sets the status without touching audit fields (admin)
// PUT /api/contact/:id/status
func (ctrl *ContactController) UpdateContactStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid contact ID")
		return
	}

	var req UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithBindingError(c, err)
		return
	}

	contact, err := ctrl.contactService.UpdateStatus(id, model.ContactStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			apperrors.NotFound(c, apperrors.ContactNotFound, "Contact message not found")
		case errors.Is(err, service.ErrContactInvalidStatus):
			apperrors.BadRequest(c, apperrors.ContactInvalidStatus, "Invalid contact status")
		default:
			log.Error("Failed to update contact status", err, map[string]interface{}{
				"contact_id": id,
			})
			apperrors.InternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Status updated successfully",
		"contact": contact,
	})
}

// DeleteContact removes a contact message (admin)
// DELETE /api/contact/:id
func (ctrl *ContactController) DeleteContact(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid contact ID")
		return
	}

	if _, err := ctrl.contactService.Delete(id); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			apperrors.NotFound(c, apperrors.ContactNotFound, "Contact message not found")
			return
		}
		log.Error("Failed to delete contact message", err, map[string]interface{}{
			"contact_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact message deleted successfully",
	})
}
