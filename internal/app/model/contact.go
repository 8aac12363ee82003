package model

import (
	"time"
)

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusResolved ContactStatus = "resolved"
)

// ValidContactStatus reports whether s is a known contact status.
func ValidContactStatus(s ContactStatus) bool {
	switch s {
	case ContactStatusNew, ContactStatusReplied, ContactStatusResolved:
		return true
	}
	return false
}

type Contact struct {
	ID          uint          `gorm:"primarykey" json:"id"`
	Name        string        `gorm:"not null" json:"name"`
	Email       string        `gorm:"not null" json:"email"`
	Phone       string        `json:"phone"`
	Message     string        `gorm:"type:text;not null" json:"message"`
	Status      ContactStatus `gorm:"type:varchar(30);default:'new'" json:"status"`
	Reply       string        `gorm:"type:text" json:"reply"`
	RepliedAt   *time.Time    `json:"replied_at"`
	RepliedByID *uint         `json:"-"`
	RepliedBy   *Admin        `gorm:"foreignKey:RepliedByID;constraint:OnDelete:NO ACTION" json:"replied_by,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}
