package controller

import (
	"errors"
	"net/http"

	"github.com/furnimart/furnimart-backend/internal/app/service"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates the admin and issues a bearer token
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithBindingError(c, err)
		return
	}

	admin, token, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "Invalid email or password")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"admin": gin.H{
			"id":         admin.ID,
			"email":      admin.Email,
			"name":       admin.Name,
			"role":       admin.Role,
			"last_login": admin.LastLogin,
		},
	})
}

// Me returns the authenticated admin
// GET /api/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	admin, err := ctrl.authService.GetAdminByID(adminID)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthAdminNotFound, "Admin account not found")
			return
		}
		log.Error("Failed to fetch admin", err, map[string]interface{}{
			"admin_id": adminID,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": admin,
	})
}

// Logout acknowledges logout. Tokens are stateless; the client discards it.
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	adminID, _ := middleware.GetAdminID(c)
	log.Info("Admin logged out", map[string]interface{}{
		"admin_id": adminID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
