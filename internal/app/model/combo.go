package model

import (
	"time"
)

// MinComboProducts is the minimum number of product entries in a bundle.
const MinComboProducts = 2

type Combo struct {
	ID                 uint        `gorm:"primarykey" json:"id"`
	Name               string      `gorm:"not null" json:"name"`
	Description        string      `gorm:"type:text;not null" json:"description"`
	Items              []ComboItem `gorm:"foreignKey:ComboID;constraint:OnDelete:CASCADE" json:"products"`
	DiscountPercentage float64     `gorm:"not null" json:"discount_percentage"`
	OriginalPrice      float64     `gorm:"not null" json:"original_price"`
	ComboPrice         float64     `gorm:"not null" json:"combo_price"`
	Image              Image       `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	IsActive           bool        `gorm:"default:true" json:"is_active"`
	ValidUntil         *time.Time  `json:"valid_until"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

func (Combo) TableName() string {
	return "combos"
}

// RecalculatePrice derives the bundle price from the original price and the
// discount percentage. Invoked by the write path before every save; when
// either input is unset the stored price is left untouched.
func (c *Combo) RecalculatePrice() {
	if c.OriginalPrice != 0 && c.DiscountPercentage != 0 {
		c.ComboPrice = c.OriginalPrice * (1 - c.DiscountPercentage/100)
	}
}

// ComboItem links a bundle to one of its products with a quantity.
type ComboItem struct {
	ID        uint     `gorm:"primarykey" json:"id"`
	ComboID   uint     `gorm:"index;not null" json:"-"`
	ProductID uint     `gorm:"index;not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:NO ACTION" json:"product,omitempty"`
	Quantity  int      `gorm:"default:1" json:"quantity"`
}

func (ComboItem) TableName() string {
	return "combo_items"
}
