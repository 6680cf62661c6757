package billing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sekahub/internal/repositories"
	"sekahub/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo,
	provideStripeGateway,
	provideBillingUserResolver,
	provideWebhookService,
	provideBillingService,
	provideEntitlementService,
)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideStripeGateway(keys services.ApiKeyService) services.StripeGateway {
	return services.NewStripeGateway(keys)
}

func provideBillingUserResolver(accounts repositories.AccountRepository, gateway services.StripeGateway) services.BillingUserResolver {
	return services.NewBillingUserResolver(accounts, gateway)
}

func provideWebhookService(
	keys services.ApiKeyService,
	gateway services.StripeGateway,
	subs repositories.SubscriptionRepository,
	resolver services.BillingUserResolver,
) services.WebhookService {
	return services.NewWebhookService(keys, gateway, subs, resolver)
}

func provideBillingService(
	gateway services.StripeGateway,
	accounts repositories.AccountRepository,
	subs repositories.SubscriptionRepository,
) services.BillingService {
	return services.NewBillingService(gateway, accounts, subs)
}

func provideEntitlementService(subs repositories.SubscriptionRepository) services.EntitlementService {
	return services.NewEntitlementService(subs)
}
