package catalog_fx

import (
	"context"
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"sekahub/internal/models/db_models"
	"sekahub/internal/repositories"
	"sekahub/internal/services"
	"sekahub/pkg/storage"
	"sekahub/pkg/utils"
)

var Module = fx.Provide(
	provideToolRepo,
	provideCategoryRepo,
	provideToolEmbeddingRepo,
	provideEmbeddingClient,
	provideCatalogService,
)

func provideToolRepo(db *gorm.DB) repositories.ToolRepository {
	return repositories.NewToolRepository(db)
}

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideToolEmbeddingRepo(db *gorm.DB) repositories.ToolEmbeddingRepository {
	return repositories.NewToolEmbeddingRepository(db)
}

// provideEmbeddingClient may return nil; the catalog service treats a missing
// embedder as "substring search only".
func provideEmbeddingClient(keys services.ApiKeyService) utils.EmbeddingClientInterface {
	apiKey, err := keys.Resolve(context.Background(), db_models.KeyOpenAI)
	if err != nil {
		log.Printf("Semantic search disabled, no embedding key: %v", err)
		return nil
	}
	return utils.NewOpenAIEmbeddingClient(apiKey)
}

func provideCatalogService(
	toolRepo repositories.ToolRepository,
	categoryRepo repositories.CategoryRepository,
	embeddingRepo repositories.ToolEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
	uploader storage.Uploader,
) services.CatalogServiceInterface {
	return services.NewCatalogService(toolRepo, categoryRepo, embeddingRepo, embedder, uploader)
}
