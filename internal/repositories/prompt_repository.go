package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"sekahub/internal/models/db_models"
)

type PromptRepository interface {
	Insert(ctx context.Context, prompt *db_models.Prompt) error
	Update(ctx context.Context, prompt *db_models.Prompt) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Prompt, error)
	List(ctx context.Context, offset, limit int) ([]db_models.Prompt, error)
	Search(ctx context.Context, query string, limit int) ([]db_models.Prompt, error)
	Count(ctx context.Context) (int64, error)
}

type promptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{db: db}
}

func (p *promptRepository) Insert(ctx context.Context, prompt *db_models.Prompt) error {
	return p.db.WithContext(ctx).Create(prompt).Error
}

func (p *promptRepository) Update(ctx context.Context, prompt *db_models.Prompt) error {
	return p.db.WithContext(ctx).Save(prompt).Error
}

func (p *promptRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&db_models.Prompt{}, "id = ?", id).Error
}

func (p *promptRepository) FindById(ctx context.Context, id string) (*db_models.Prompt, error) {
	var prompt db_models.Prompt
	err := p.db.WithContext(ctx).First(&prompt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prompt, nil
}

func (p *promptRepository) List(ctx context.Context, offset, limit int) ([]db_models.Prompt, error) {
	var prompts []db_models.Prompt
	err := p.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

func (p *promptRepository) Search(ctx context.Context, query string, limit int) ([]db_models.Prompt, error) {
	var prompts []db_models.Prompt
	pattern := "%" + query + "%"
	err := p.db.WithContext(ctx).
		Where("title ILIKE ? OR description ILIKE ? OR tool ILIKE ?", pattern, pattern, pattern).
		Limit(limit).
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

func (p *promptRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.db.WithContext(ctx).Model(&db_models.Prompt{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
