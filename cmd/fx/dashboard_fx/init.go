package dashboard_fx

import (
	"go.uber.org/fx"
	"sekahub/internal/repositories"
	"sekahub/internal/services"
)

var Module = fx.Provide(provideDashboardService)

func provideDashboardService(
	accountRepo repositories.AccountRepository,
	toolRepo repositories.ToolRepository,
	promptRepo repositories.PromptRepository,
	scriptRepo repositories.ScriptRepository,
	blogRepo repositories.BlogRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(accountRepo, toolRepo, promptRepo, scriptRepo, blogRepo, subscriptionRepo)
}
