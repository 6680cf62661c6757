package db_models

// Script is a downloadable n8n workflow export offered to subscribers.
type Script struct {
	BaseModel
	Title       string `gorm:"index"`
	Description string
	FileURL     string `gorm:"column:file_url"`
}

func (Script) TableName() string {
	return "n8n_scripts"
}
