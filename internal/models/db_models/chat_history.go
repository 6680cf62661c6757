package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatHistory stores one conversation per row; Messages is the full
// serialized transcript the client can replay.
type ChatHistory struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	LastMessage string
	Messages    datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
