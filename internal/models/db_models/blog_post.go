package db_models

import "github.com/google/uuid"

type BlogPost struct {
	BaseModel
	Title      string
	Slug       string `gorm:"uniqueIndex"`
	Excerpt    string
	Content    string
	ImageURL   string
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	Published  bool       `gorm:"default:false;index"`

	Category *Category `gorm:"foreignKey:CategoryID"`
}
