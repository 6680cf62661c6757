package blog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sekahub/internal/repositories"
	"sekahub/internal/services"
	"sekahub/pkg/storage"
)

var Module = fx.Provide(
	provideBlogService, provideBlogRepo)

func provideBlogRepo(db *gorm.DB) repositories.BlogRepository {
	return repositories.NewBlogRepository(db)
}

func provideBlogService(blogRepo repositories.BlogRepository, uploader storage.Uploader) services.BlogServiceInterface {
	return services.NewBlogService(blogRepo, uploader)
}
