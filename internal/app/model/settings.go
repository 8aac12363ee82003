package model

import (
	"time"
)

// SettingsID is the fixed primary key of the settings singleton. All reads
// and writes go through this key so at most one row can exist.
const SettingsID uint = 1

type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

type BusinessHours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

type Settings struct {
	ID             uint          `gorm:"primarykey" json:"id"`
	WhatsappNumber string        `json:"whatsapp_number"`
	ShopAddress    string        `json:"shop_address"`
	MapEmbedCode   string        `gorm:"type:text" json:"map_embed_code"`
	ShopEmail      string        `json:"shop_email"`
	ShopPhone      string        `json:"shop_phone"`
	SocialMedia    SocialMedia   `gorm:"embedded;embeddedPrefix:social_" json:"social_media"`
	BusinessHours  BusinessHours `gorm:"embedded;embeddedPrefix:hours_" json:"business_hours"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (Settings) TableName() string {
	return "settings"
}
