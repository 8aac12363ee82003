package model

import (
	"time"
)

type Banner struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Subtitle   string    `json:"subtitle"`
	Image      Image     `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	Link       string    `json:"link"`
	ButtonText string    `json:"button_text"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	SortOrder  int       `gorm:"default:0" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Banner) TableName() string {
	return "banners"
}
