package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"sekahub/internal/models/db_models"
)

type ToolRepository interface {
	Insert(ctx context.Context, tool *db_models.Tool) error
	Update(ctx context.Context, tool *db_models.Tool) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Tool, error)
	List(ctx context.Context, categoryID string, offset, limit int) ([]db_models.Tool, error)
	Search(ctx context.Context, query string, limit int) ([]db_models.Tool, error)
	ListByIds(ctx context.Context, ids []string) ([]db_models.Tool, error)
	Count(ctx context.Context) (int64, error)
}

type toolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) ToolRepository {
	return &toolRepository{db: db}
}

func (t *toolRepository) Insert(ctx context.Context, tool *db_models.Tool) error {
	return t.db.WithContext(ctx).Create(tool).Error
}

func (t *toolRepository) Update(ctx context.Context, tool *db_models.Tool) error {
	return t.db.WithContext(ctx).Save(tool).Error
}

func (t *toolRepository) Delete(ctx context.Context, id string) error {
	return t.db.WithContext(ctx).Delete(&db_models.Tool{}, "id = ?", id).Error
}

func (t *toolRepository) FindById(ctx context.Context, id string) (*db_models.Tool, error) {
	var tool db_models.Tool
	err := t.db.WithContext(ctx).Preload("Category").First(&tool, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tool, nil
}

func (t *toolRepository) List(ctx context.Context, categoryID string, offset, limit int) ([]db_models.Tool, error) {
	q := t.db.WithContext(ctx).Preload("Category").Order("name ASC")
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	var tools []db_models.Tool
	if err := q.Offset(offset).Limit(limit).Find(&tools).Error; err != nil {
		return nil, err
	}
	return tools, nil
}

func (t *toolRepository) Search(ctx context.Context, query string, limit int) ([]db_models.Tool, error) {
	var tools []db_models.Tool
	pattern := "%" + query + "%"
	err := t.db.WithContext(ctx).
		Preload("Category").
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Limit(limit).
		Find(&tools).Error
	if err != nil {
		return nil, err
	}
	return tools, nil
}

func (t *toolRepository) ListByIds(ctx context.Context, ids []string) ([]db_models.Tool, error) {
	var tools []db_models.Tool
	if err := t.db.WithContext(ctx).Preload("Category").Where("id IN ?", ids).Find(&tools).Error; err != nil {
		return nil, err
	}
	return tools, nil
}

func (t *toolRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := t.db.WithContext(ctx).Model(&db_models.Tool{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
