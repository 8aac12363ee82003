package service

import (
	"errors"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound      = errors.New("contact message not found")
	ErrContactInvalidStatus = errors.New("invalid contact status")
)

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type ContactListOptions struct {
	Status        *model.ContactStatus
	SortBy        string
	SortAscending bool
	Page          int
	PerPage       int
}

type ContactService interface {
	Submit(input ContactInput) (*model.Contact, error)
	List(opts ContactListOptions) ([]model.Contact, int64, error)
	GetByID(id uint) (*model.Contact, error)
	Reply(id uint, adminID uint, reply string) (*model.Contact, error)
	UpdateStatus(id uint, status model.ContactStatus) (*model.Contact, error)
	Delete(id uint) (*model.Contact, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) Submit(input ContactInput) (*model.Contact, error) {
	logger.Info("Contact message submitted", map[string]interface{}{
		"name":  input.Name,
		"email": input.Email,
	})

	contact := &model.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
		Status:  model.ContactStatusNew,
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) List(opts ContactListOptions) ([]model.Contact, int64, error) {
	filter := repository.ContactFilter{
		Status:        opts.Status,
		SortBy:        opts.SortBy,
		SortAscending: opts.SortAscending,
	}
	if opts.PerPage > 0 {
		filter.Limit = opts.PerPage
		if opts.Page > 1 {
			filter.Offset = (opts.Page - 1) * opts.PerPage
		}
	}

	contacts, total, err := s.contactRepo.FindWithFilter(filter)
	if err != nil {
		logger.Error("Failed to list contact messages", err)
		return nil, 0, err
	}
	return contacts, total, nil
}

func (s *contactService) GetByID(id uint) (*model.Contact, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return contact, nil
}

// Reply records the reply text and stamps who answered and when. Replies do
// not send mail; the admin handles delivery out of band.
func (s *contactService) Reply(id uint, adminID uint, reply string) (*model.Contact, error) {
	contact, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	contact.Reply = reply
	contact.Status = model.ContactStatusReplied
	contact.RepliedAt = &now
	contact.RepliedByID = &adminID
	contact.RepliedBy = nil

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, err
	}

	logger.Info("Contact message replied", map[string]interface{}{
		"contact_id": id,
		"admin_id":   adminID,
	})
	return s.GetByID(id)
}

// UpdateStatus moves a message between statuses without touching the reply
// audit fields. "replied" is reserved for the reply path, which stamps them.
func (s *contactService) UpdateStatus(id uint, status model.ContactStatus) (*model.Contact, error) {
	if !model.ValidContactStatus(status) || status == model.ContactStatusReplied {
		return nil, ErrContactInvalidStatus
	}

	contact, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	contact.Status = status
	if err := s.contactRepo.Update(contact); err != nil {
		return nil, err
	}

	logger.Info("Contact status updated", map[string]interface{}{
		"contact_id": id,
		"status":     status,
	})
	return contact, nil
}

func (s *contactService) Delete(id uint) (*model.Contact, error) {
	contact, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.contactRepo.Delete(id); err != nil {
		return nil, err
	}

	logger.Info("Contact message deleted", map[string]interface{}{
		"contact_id": id,
	})
	return contact, nil
}
