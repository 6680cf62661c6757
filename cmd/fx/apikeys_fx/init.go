package apikeys_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sekahub/internal/repositories"
	"sekahub/internal/services"
)

var Module = fx.Provide(
	provideApiKeyService, provideApiKeyRepo)

func provideApiKeyRepo(db *gorm.DB) repositories.ApiKeyRepository {
	return repositories.NewApiKeyRepository(db)
}

func provideApiKeyService(repo repositories.ApiKeyRepository) services.ApiKeyService {
	return services.NewApiKeyService(repo)
}
