package db_models

import "github.com/google/uuid"

type Tool struct {
	BaseModel
	Name        string `gorm:"index"`
	Description string
	CategoryID  uuid.UUID `gorm:"type:uuid;index"`
	Subcategory string
	PriceType   string // "free" | "freemium" | "paid"
	LogoURL     string
	WebsiteLink string
	AffiliateLink string

	Category Category `gorm:"foreignKey:CategoryID"`
}
