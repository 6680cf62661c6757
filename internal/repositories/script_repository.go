package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"sekahub/internal/models/db_models"
)

type ScriptRepository interface {
	Insert(ctx context.Context, script *db_models.Script) error
	Update(ctx context.Context, script *db_models.Script) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Script, error)
	List(ctx context.Context, offset, limit int) ([]db_models.Script, error)
	Count(ctx context.Context) (int64, error)
}

type scriptRepository struct {
	db *gorm.DB
}

func NewScriptRepository(db *gorm.DB) ScriptRepository {
	return &scriptRepository{db: db}
}

func (r *scriptRepository) Insert(ctx context.Context, script *db_models.Script) error {
	return r.db.WithContext(ctx).Create(script).Error
}

func (r *scriptRepository) Update(ctx context.Context, script *db_models.Script) error {
	return r.db.WithContext(ctx).Save(script).Error
}

func (r *scriptRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Script{}, "id = ?", id).Error
}

func (r *scriptRepository) FindById(ctx context.Context, id string) (*db_models.Script, error) {
	var script db_models.Script
	err := r.db.WithContext(ctx).First(&script, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &script, nil
}

func (r *scriptRepository) List(ctx context.Context, offset, limit int) ([]db_models.Script, error) {
	var scripts []db_models.Script
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&scripts).Error
	if err != nil {
		return nil, err
	}
	return scripts, nil
}

func (r *scriptRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db_models.Script{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
