package scripts_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sekahub/internal/repositories"
	"sekahub/internal/services"
)

var Module = fx.Provide(
	provideScriptService, provideScriptRepo)

func provideScriptRepo(db *gorm.DB) repositories.ScriptRepository {
	return repositories.NewScriptRepository(db)
}

func provideScriptService(scriptRepo repositories.ScriptRepository) services.ScriptServiceInterface {
	return services.NewScriptService(scriptRepo)
}
