package db_models

type Category struct {
	BaseModel
	Name        string `gorm:"uniqueIndex"`
	Slug        string `gorm:"uniqueIndex"`
	Description *string
}
