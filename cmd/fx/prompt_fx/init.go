package prompt_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sekahub/internal/repositories"
	"sekahub/internal/services"
)

var Module = fx.Provide(
	providePromptService, providePromptRepo)

func providePromptRepo(db *gorm.DB) repositories.PromptRepository {
	return repositories.NewPromptRepository(db)
}

func providePromptService(promptRepo repositories.PromptRepository) services.PromptServiceInterface {
	return services.NewPromptService(promptRepo)
}
