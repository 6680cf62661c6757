package services

import (
	"context"
	"sync"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"sekahub/internal/models/db_models"
)

// StripeGateway is the narrow surface this app needs from Stripe. It exists
// so services receive an explicit, substitutable handle instead of mutating
// the SDK's package-level key.
type StripeGateway interface {
	GetCustomer(ctx context.Context, customerID string) (*stripe.Customer, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*stripe.Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (*stripe.Subscription, error)
	NewCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	NewPortalSession(ctx context.Context, params *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error)
}

// stripeGateway builds its API client on first use with the secret key from
// the key store, then reuses it for the process lifetime. Rotating the key
// requires a restart for the client itself; the webhook signing secret is
// still resolved per request.
type stripeGateway struct {
	keys ApiKeyService

	mu sync.Mutex
	sc *client.API
}

func NewStripeGateway(keys ApiKeyService) StripeGateway {
	return &stripeGateway{keys: keys}
}

func (g *stripeGateway) api(ctx context.Context) (*client.API, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sc != nil {
		return g.sc, nil
	}

	secretKey, err := g.keys.Resolve(ctx, db_models.KeyStripeSecret)
	if err != nil {
		return nil, err
	}

	sc := &client.API{}
	sc.Init(secretKey, nil)
	g.sc = sc
	return sc, nil
}

func (g *stripeGateway) GetCustomer(ctx context.Context, customerID string) (*stripe.Customer, error) {
	sc, err := g.api(ctx)
	if err != nil {
		return nil, err
	}
	return sc.Customers.Get(customerID, &stripe.CustomerParams{Params: stripe.Params{Context: ctx}})
}

func (g *stripeGateway) GetSubscription(ctx context.Context, subscriptionID string) (*stripe.Subscription, error) {
	sc, err := g.api(ctx)
	if err != nil {
		return nil, err
	}
	return sc.Subscriptions.Get(subscriptionID, &stripe.SubscriptionParams{Params: stripe.Params{Context: ctx}})
}

func (g *stripeGateway) CancelSubscription(ctx context.Context, subscriptionID string) (*stripe.Subscription, error) {
	sc, err := g.api(ctx)
	if err != nil {
		return nil, err
	}
	return sc.Subscriptions.Cancel(subscriptionID, &stripe.SubscriptionCancelParams{Params: stripe.Params{Context: ctx}})
}

func (g *stripeGateway) NewCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	sc, err := g.api(ctx)
	if err != nil {
		return nil, err
	}
	params.Context = ctx
	return sc.CheckoutSessions.New(params)
}

func (g *stripeGateway) NewPortalSession(ctx context.Context, params *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error) {
	sc, err := g.api(ctx)
	if err != nil {
		return nil, err
	}
	params.Context = ctx
	return sc.BillingPortalSessions.New(params)
}
