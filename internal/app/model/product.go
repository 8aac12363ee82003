package model

import (
	"time"

	"github.com/furnimart/furnimart-backend/pkg/util"
)

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `gorm:"default:'cm'" json:"unit"`
}

// Offer is a time-bound promotional note attached to a product.
type Offer struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Discount    float64    `json:"discount"`
	ValidUntil  *time.Time `json:"valid_until"`
}

type Product struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	Slug           string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	Price          float64        `gorm:"not null" json:"price"`
	OriginalPrice  float64        `json:"original_price"`
	CategoryID     uint           `gorm:"index;not null" json:"category_id"`
	Category       *Category      `gorm:"foreignKey:CategoryID;constraint:OnDelete:NO ACTION" json:"category,omitempty"`
	Images         []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Dimensions     Dimensions     `gorm:"embedded;embeddedPrefix:dim_" json:"dimensions"`
	Materials      []string       `gorm:"serializer:json" json:"materials"`
	Weight         float64        `json:"weight"`
	InStock        bool           `gorm:"default:true" json:"in_stock"`
	StockQuantity  int            `gorm:"default:0" json:"stock_quantity"`
	IsNewProduct   bool           `gorm:"default:false" json:"is_new_product"`
	IsTopRated     bool           `gorm:"default:false" json:"is_top_rated"`
	Rating         float64        `gorm:"default:0" json:"rating"`
	ReviewCount    int            `gorm:"default:0" json:"review_count"`
	Offers         []Offer        `gorm:"serializer:json" json:"offers"`
	SeoTitle       string         `json:"seo_title"`
	SeoDescription string         `json:"seo_description"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	SortOrder      int            `gorm:"default:0" json:"sort_order"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// DeriveSlug recomputes the slug from the current name. Called by the write
// path before persistence whenever the name changes; uniqueness is enforced
// by the index and surfaces as a conflict on save.
func (p *Product) DeriveSlug() {
	p.Slug = util.Slugify(p.Name)
}

// ProductImage is one stored image of a product. Images are child rows with
// their own IDs so a single image can be removed without rewriting the rest.
type ProductImage struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"-"`
	URL       string `json:"url"`
	Key       string `json:"key"`
	Alt       string `json:"alt"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
