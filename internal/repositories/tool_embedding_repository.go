package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"sekahub/internal/models/db_models"
)

type ToolEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *db_models.ToolEmbedding) error
	FindNearest(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.ToolEmbedding, error)
}

type toolEmbeddingRepository struct {
	db *gorm.DB
}

func NewToolEmbeddingRepository(db *gorm.DB) ToolEmbeddingRepository {
	return &toolEmbeddingRepository{db: db}
}

func (r *toolEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.ToolEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tool_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"embedding", "updated_at"}),
		}).
		Create(embedding).Error
}

func (r *toolEmbeddingRepository) FindNearest(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.ToolEmbedding, error) {
	var results []db_models.ToolEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) AS similarity
        FROM tool_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := r.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
