package chat_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sekahub/internal/repositories"
	"sekahub/internal/services"
)

var Module = fx.Provide(
	provideChatService, provideChatHistoryRepo)

func provideChatHistoryRepo(db *gorm.DB) repositories.ChatHistoryRepository {
	return repositories.NewChatHistoryRepository(db)
}

func provideChatService(historyRepo repositories.ChatHistoryRepository, keys services.ApiKeyService) services.ChatServiceInterface {
	return services.NewChatService(historyRepo, keys)
}
