package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"sekahub/internal/models/db_models"
)

type ChatHistoryRepository interface {
	Insert(ctx context.Context, history *db_models.ChatHistory) error
	Update(ctx context.Context, history *db_models.ChatHistory) error
	FindById(ctx context.Context, id string) (*db_models.ChatHistory, error)
	ListByAccount(ctx context.Context, accountID string, limit int) ([]db_models.ChatHistory, error)
	Delete(ctx context.Context, id string) error
}

type chatHistoryRepository struct {
	db *gorm.DB
}

func NewChatHistoryRepository(db *gorm.DB) ChatHistoryRepository {
	return &chatHistoryRepository{db: db}
}

func (c *chatHistoryRepository) Insert(ctx context.Context, history *db_models.ChatHistory) error {
	return c.db.WithContext(ctx).Create(history).Error
}

func (c *chatHistoryRepository) Update(ctx context.Context, history *db_models.ChatHistory) error {
	return c.db.WithContext(ctx).Save(history).Error
}

func (c *chatHistoryRepository) FindById(ctx context.Context, id string) (*db_models.ChatHistory, error) {
	var history db_models.ChatHistory
	err := c.db.WithContext(ctx).First(&history, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &history, nil
}

func (c *chatHistoryRepository) ListByAccount(ctx context.Context, accountID string, limit int) ([]db_models.ChatHistory, error) {
	var histories []db_models.ChatHistory
	err := c.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}

func (c *chatHistoryRepository) Delete(ctx context.Context, id string) error {
	return c.db.WithContext(ctx).Delete(&db_models.ChatHistory{}, "id = ?", id).Error
}
