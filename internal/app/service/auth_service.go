package service

import (
	"errors"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"github.com/furnimart/furnimart-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminNotFound      = errors.New("admin not found")
)

type AuthService interface {
	Login(email, password string) (*model.Admin, string, error)
	GetAdminByID(id uint) (*model.Admin, error)
	EnsureAdmin(email, password string) error
}

type authService struct {
	adminRepo   repository.AdminRepository
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewAuthService(adminRepo repository.AdminRepository, jwtSecret string, tokenExpiry time.Duration) AuthService {
	return &authService{
		adminRepo:   adminRepo,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) Login(email, password string) (*model.Admin, string, error) {
	logger.Info("Admin login attempt", map[string]interface{}{
		"email": email,
	})

	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: admin not found", map[string]interface{}{
				"email": email,
			})
			return nil, "", ErrInvalidCredentials
		}
		logger.Error("Failed to look up admin", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", err
	}

	if !util.VerifyPassword(admin.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email": email,
		})
		return nil, "", ErrInvalidCredentials
	}

	token, err := util.GenerateToken(admin.ID, admin.Email, string(admin.Role), s.jwtSecret, s.tokenExpiry)
	if err != nil {
		logger.Error("Failed to generate token", err, map[string]interface{}{
			"admin_id": admin.ID,
		})
		return nil, "", err
	}

	now := time.Now()
	admin.LastLogin = &now
	if err := s.adminRepo.Update(admin); err != nil {
		// Login still succeeds; the timestamp is informational.
		logger.Warn("Failed to record last login time", map[string]interface{}{
			"admin_id": admin.ID,
		})
	}

	logger.Info("Admin logged in successfully", map[string]interface{}{
		"admin_id": admin.ID,
		"email":    admin.Email,
	})

	return admin, token, nil
}

func (s *authService) GetAdminByID(id uint) (*model.Admin, error) {
	admin, err := s.adminRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

// EnsureAdmin creates the bootstrap admin account when no account with the
// configured email exists yet. Runs once at startup.
func (s *authService) EnsureAdmin(email, password string) error {
	if email == "" || password == "" {
		logger.Warn("Admin bootstrap skipped: credentials not configured", nil)
		return nil
	}

	_, err := s.adminRepo.FindByEmail(email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check for existing admin", err, map[string]interface{}{
			"email": email,
		})
		return err
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash bootstrap admin password", err, nil)
		return err
	}

	admin := &model.Admin{
		Email:        email,
		PasswordHash: hashed,
		Name:         "Administrator",
		Role:         model.RoleSuperAdmin,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return err
	}

	logger.Info("Bootstrap admin account created", map[string]interface{}{
		"email": email,
	})
	return nil
}
