package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"sekahub/internal/models/db_models"
)

type CategoryRepository interface {
	Insert(ctx context.Context, category *db_models.Category) error
	FindById(ctx context.Context, id string) (*db_models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Category, error)
	ListAll(ctx context.Context) ([]db_models.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (c *categoryRepository) Insert(ctx context.Context, category *db_models.Category) error {
	return c.db.WithContext(ctx).Create(category).Error
}

func (c *categoryRepository) FindById(ctx context.Context, id string) (*db_models.Category, error) {
	var category db_models.Category
	err := c.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (c *categoryRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Category, error) {
	var category db_models.Category
	err := c.db.WithContext(ctx).First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (c *categoryRepository) ListAll(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	if err := c.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *categoryRepository) Delete(ctx context.Context, id string) error {
	return c.db.WithContext(ctx).Delete(&db_models.Category{}, "id = ?", id).Error
}
