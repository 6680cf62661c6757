package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"sekahub/internal/models/db_models"
)

type BlogRepository interface {
	Insert(ctx context.Context, post *db_models.BlogPost) error
	Update(ctx context.Context, post *db_models.BlogPost) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.BlogPost, error)
	List(ctx context.Context, publishedOnly bool, offset, limit int) ([]db_models.BlogPost, error)
	Count(ctx context.Context) (int64, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (b *blogRepository) Insert(ctx context.Context, post *db_models.BlogPost) error {
	return b.db.WithContext(ctx).Create(post).Error
}

func (b *blogRepository) Update(ctx context.Context, post *db_models.BlogPost) error {
	return b.db.WithContext(ctx).Save(post).Error
}

func (b *blogRepository) Delete(ctx context.Context, id string) error {
	return b.db.WithContext(ctx).Delete(&db_models.BlogPost{}, "id = ?", id).Error
}

func (b *blogRepository) FindById(ctx context.Context, id string) (*db_models.BlogPost, error) {
	var post db_models.BlogPost
	err := b.db.WithContext(ctx).Preload("Category").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (b *blogRepository) FindBySlug(ctx context.Context, slug string) (*db_models.BlogPost, error) {
	var post db_models.BlogPost
	err := b.db.WithContext(ctx).Preload("Category").First(&post, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (b *blogRepository) List(ctx context.Context, publishedOnly bool, offset, limit int) ([]db_models.BlogPost, error) {
	q := b.db.WithContext(ctx).Preload("Category").Order("created_at DESC")
	if publishedOnly {
		q = q.Where("published = TRUE")
	}

	var posts []db_models.BlogPost
	if err := q.Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (b *blogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := b.db.WithContext(ctx).Model(&db_models.BlogPost{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
