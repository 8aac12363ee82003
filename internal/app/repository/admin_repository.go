package repository

import (
	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *model.Admin) error
	FindByEmail(email string) (*model.Admin, error)
	FindByID(id uint) (*model.Admin, error)
	Update(admin *model.Admin) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *model.Admin) error {
	logger.Debug("Creating admin in database", map[string]interface{}{
		"email": admin.Email,
	})

	if err := r.db.Create(admin).Error; err != nil {
		logger.Error("Failed to create admin in database", err, map[string]interface{}{
			"email": admin.Email,
		})
		return err
	}
	return nil
}

func (r *adminRepository) FindByEmail(email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByID(id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Update(admin *model.Admin) error {
	if err := r.db.Save(admin).Error; err != nil {
		logger.Error("Failed to update admin in database", err, map[string]interface{}{
			"admin_id": admin.ID,
		})
		return err
	}
	return nil
}
