package services

import (
	"context"
	"fmt"
	"log"
	"os"

	stripe "github.com/stripe/stripe-go/v82"
	"sekahub/internal/models/db_models"
	"sekahub/internal/models/response_models"
	"sekahub/internal/repositories"
	"sekahub/pkg/utils"
)

type BillingService interface {
	// CreateCheckoutSession mints a hosted checkout URL for the given price.
	// The application user id rides along as client reference and metadata so
	// later webhook events can be correlated before any local record exists.
	CreateCheckoutSession(ctx context.Context, accountID string, priceID string) (*response_models.CheckoutSessionResponse, error)

	// CreatePortalSession opens the provider's self-service billing portal
	// for the caller's stored customer.
	CreatePortalSession(ctx context.Context, accountID string) (*response_models.PortalSessionResponse, error)

	// CancelSubscription cancels the caller's own subscription at the
	// provider, then mirrors the cancellation locally. The subscription id is
	// taken from the store, never trusted from the client; a client-supplied
	// id only has to match. The local write happens strictly after provider
	// confirmation so a provider failure never desyncs the store.
	CancelSubscription(ctx context.Context, accountID string, clientSubID string) error
}

type billingService struct {
	gateway  StripeGateway
	accounts repositories.AccountRepository
	subs     repositories.SubscriptionRepository
	appURL   string
}

func NewBillingService(
	gateway StripeGateway,
	accounts repositories.AccountRepository,
	subs repositories.SubscriptionRepository,
) BillingService {
	return &billingService{
		gateway:  gateway,
		accounts: accounts,
		subs:     subs,
		appURL:   os.Getenv("APP_URL"),
	}
}

func (b *billingService) CreateCheckoutSession(ctx context.Context, accountID string, priceID string) (*response_models.CheckoutSessionResponse, error) {
	account, err := b.accounts.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	params := &stripe.CheckoutSessionParams{
		CustomerEmail: stripe.String(account.Email),
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(b.appURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:         stripe.String(b.appURL + "/cancel"),
		ClientReferenceID: stripe.String(accountID),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{"user_id": accountID},
		},
	}

	session, err := b.gateway.NewCheckoutSession(ctx, params)
	if err != nil {
		log.Printf("billing: checkout session failed for account %s: %v", accountID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}

	return &response_models.CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func (b *billingService) CreatePortalSession(ctx context.Context, accountID string) (*response_models.PortalSessionResponse, error) {
	sub, err := b.subs.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil || sub.StripeCustomerID == "" {
		return nil, utils.ErrNoSubscription
	}

	session, err := b.gateway.NewPortalSession(ctx, &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(sub.StripeCustomerID),
		ReturnURL: stripe.String(b.appURL + "/profile"),
	})
	if err != nil {
		log.Printf("billing: portal session failed for account %s: %v", accountID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}

	return &response_models.PortalSessionResponse{URL: session.URL}, nil
}

func (b *billingService) CancelSubscription(ctx context.Context, accountID string, clientSubID string) error {
	sub, err := b.subs.GetByAccountID(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil || sub.StripeSubscriptionID == "" {
		return utils.ErrNoSubscription
	}
	if clientSubID != "" && clientSubID != sub.StripeSubscriptionID {
		return utils.ErrSubscriptionMismatch
	}

	if _, err := b.gateway.CancelSubscription(ctx, sub.StripeSubscriptionID); err != nil {
		log.Printf("billing: provider cancel failed for %s: %v", sub.StripeSubscriptionID, err)
		return fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}

	// A failure here leaves the store transiently behind the provider; the
	// confirming subscription.deleted webhook reconciles it through the same
	// upsert path.
	if err := b.subs.UpdateStatus(ctx, sub.AccountID, db_models.SubStatusCanceled); err != nil {
		log.Printf("billing: local cancel write failed for account %s: %v", accountID, err)
	}

	return nil
}
