package middleware

import (
	"net/http"
	"strings"

	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/pkg/util"
	"github.com/gin-gonic/gin"
)

// Context keys for admin information
const (
	AdminIDKey    = "admin_id"
	AdminEmailKey = "admin_email"
)

type AuthMiddleware struct {
	jwtSecret string
	adminRepo repository.AdminRepository
}

func NewAuthMiddleware(jwtSecret string, adminRepo repository.AdminRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
		adminRepo: adminRepo,
	}
}

// Authenticate validates the bearer token and checks the admin account still
// exists. A token issued for a since-deleted account is rejected.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Missing authorization header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Warn("Invalid authorization header format", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(parts[1], m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})

			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenExpired, "Session has expired")
			} else {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid authentication token")
			}
			c.Abort()
			return
		}

		admin, err := m.adminRepo.FindByID(claims.AdminID)
		if err != nil {
			log.Warn("Admin account no longer exists", map[string]interface{}{
				"admin_id": claims.AdminID,
				"path":     c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthAdminNotFound, "Admin account not found")
			c.Abort()
			return
		}

		c.Set(AdminIDKey, admin.ID)
		c.Set(AdminEmailKey, admin.Email)

		log.Debug("Admin authenticated successfully", map[string]interface{}{
			"admin_id": admin.ID,
			"email":    admin.Email,
		})

		c.Next()
	}
}

// GetAdminID extracts the authenticated admin ID from context
func GetAdminID(c *gin.Context) (uint, bool) {
	adminID, exists := c.Get(AdminIDKey)
	if !exists {
		return 0, false
	}
	id, ok := adminID.(uint)
	return id, ok
}
