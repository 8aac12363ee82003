package model

import (
	"time"

	"github.com/furnimart/furnimart-backend/pkg/util"
)

type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Image       Image     `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// ProductCount is computed by the listing query, not stored.
	ProductCount int64 `gorm:"-" json:"product_count"`
}

func (Category) TableName() string {
	return "categories"
}

// DeriveSlug recomputes the slug from the current name. Called by the write
// path before persistence whenever the name changes.
func (c *Category) DeriveSlug() {
	c.Slug = util.Slugify(c.Name)
}
