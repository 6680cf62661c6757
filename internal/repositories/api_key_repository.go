package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"sekahub/internal/models/db_models"
)

type ApiKeyRepository interface {
	FindByName(ctx context.Context, keyName string) (*db_models.ApiKey, error)
	Upsert(ctx context.Context, keyName, keyValue string) error
}

type apiKeyRepository struct {
	db *gorm.DB
}

func NewApiKeyRepository(db *gorm.DB) ApiKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) FindByName(ctx context.Context, keyName string) (*db_models.ApiKey, error) {
	var key db_models.ApiKey
	err := r.db.WithContext(ctx).First(&key, "key_name = ?", keyName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &key, nil
}

func (r *apiKeyRepository) Upsert(ctx context.Context, keyName, keyValue string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"key_value", "updated_at"}),
		}).
		Create(&db_models.ApiKey{KeyName: keyName, KeyValue: keyValue}).Error
}
