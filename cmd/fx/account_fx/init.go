package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sekahub/internal/repositories"
	"sekahub/internal/services"
	mem "sekahub/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	subRepo repositories.SubscriptionRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, subRepo, mailService, resetTokens)
}
