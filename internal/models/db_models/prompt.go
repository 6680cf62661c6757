package db_models

type Prompt struct {
	BaseModel
	Title       string `gorm:"index"`
	Description string
	PromptText  string
	Tool        string `gorm:"index"` // name of the tool the prompt targets
}
