package model

import (
	"time"
)

type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super_admin"
)

type Admin struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Name         string     `gorm:"not null" json:"name"`
	Role         AdminRole  `gorm:"type:varchar(50);default:'super_admin'" json:"role"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}
