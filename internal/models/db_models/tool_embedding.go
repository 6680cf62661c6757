package db_models

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// ToolEmbedding holds one embedding vector per tool for semantic search.
type ToolEmbedding struct {
	BaseModel
	ToolID    uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`

	Tool Tool `gorm:"foreignKey:ToolID"`
}
