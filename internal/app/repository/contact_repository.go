package repository

import (
	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

var contactSortFields = map[string]string{
	"created_at": "created_at",
	"createdAt":  "created_at",
	"status":     "status",
	"name":       "name",
}

type ContactFilter struct {
	Status        *model.ContactStatus
	SortBy        string
	SortAscending bool
	Limit         int
	Offset        int
}

type ContactRepository interface {
	Create(contact *model.Contact) error
	FindWithFilter(filter ContactFilter) ([]model.Contact, int64, error)
	FindByID(id uint) (*model.Contact, error)
	Update(contact *model.Contact) error
	Delete(id uint) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(contact *model.Contact) error {
	logger.Debug("Creating contact message in database", map[string]interface{}{
		"email": contact.Email,
	})

	if err := r.db.Create(contact).Error; err != nil {
		logger.Error("Failed to create contact message in database", err, map[string]interface{}{
			"email": contact.Email,
		})
		return err
	}
	return nil
}

func (r *contactRepository) FindWithFilter(filter ContactFilter) ([]model.Contact, int64, error) {
	query := r.db.Model(&model.Contact{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count contact messages", err)
		return nil, 0, err
	}

	column, ok := contactSortFields[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortAscending {
		direction = "ASC"
	}
	query = query.Order(column + " " + direction).Preload("RepliedBy")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var contacts []model.Contact
	if err := query.Find(&contacts).Error; err != nil {
		logger.Error("Failed to find contact messages with filter", err)
		return nil, 0, err
	}

	return contacts, total, nil
}

func (r *contactRepository) FindByID(id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.Preload("RepliedBy").First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Update(contact *model.Contact) error {
	logger.Debug("Updating contact message in database", map[string]interface{}{
		"contact_id": contact.ID,
		"status":     contact.Status,
	})

	if err := r.db.Save(contact).Error; err != nil {
		logger.Error("Failed to update contact message in database", err, map[string]interface{}{
			"contact_id": contact.ID,
		})
		return err
	}
	return nil
}

func (r *contactRepository) Delete(id uint) error {
	return r.db.Delete(&model.Contact{}, id).Error
}
