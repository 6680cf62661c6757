package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"sekahub/internal/models/db_models"
	"sekahub/internal/repositories"
	"sekahub/pkg/utils"
)

// WebhookService turns Stripe event deliveries into entitlement store writes.
//
// Deliveries may arrive out of order or more than once, so every handler
// recomputes the absolute status from the event's subscription object and
// upserts it keyed on the account id. An event older than the one already
// applied (by the provider's own created timestamp) is discarded, which keeps
// redelivered or late events from rolling the record back.
type WebhookService interface {
	// HandleEvent verifies and applies one raw event delivery. The payload
	// must be the unmodified request body; re-serializing it before
	// verification would invalidate the signature.
	HandleEvent(ctx context.Context, payload []byte, sigHeader string) error
}

// BillingUserResolver maps a billing-side event to an application account.
// Metadata carried on the subscription is preferred; customer-email matching
// is the fallback for events created before metadata propagation existed.
type BillingUserResolver interface {
	ResolveAccount(ctx context.Context, sub *stripe.Subscription) (*db_models.Account, error)
}

type webhookService struct {
	keys     ApiKeyService
	gateway  StripeGateway
	subs     repositories.SubscriptionRepository
	resolver BillingUserResolver
}

func NewWebhookService(
	keys ApiKeyService,
	gateway StripeGateway,
	subs repositories.SubscriptionRepository,
	resolver BillingUserResolver,
) WebhookService {
	return &webhookService{
		keys:     keys,
		gateway:  gateway,
		subs:     subs,
		resolver: resolver,
	}
}

func (w *webhookService) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	if sigHeader == "" {
		return fmt.Errorf("%w: missing Stripe-Signature header", utils.ErrWebhookSignature)
	}

	// The signing secret is resolved per delivery so a rotated secret takes
	// effect immediately.
	secret, err := w.keys.Resolve(ctx, db_models.KeyStripeWebhookSecret)
	if err != nil {
		return err
	}

	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrWebhookSignature, err)
	}

	switch event.Type {
	case "customer.subscription.created",
		"customer.subscription.updated",
		"customer.subscription.deleted":
		return w.handleSubscriptionEvent(ctx, event)

	case "invoice.payment_succeeded",
		"invoice.payment_failed":
		return w.handleInvoiceEvent(ctx, event)

	default:
		log.Printf("webhook: ignored event type %s", event.Type)
		return nil
	}
}

func (w *webhookService) handleSubscriptionEvent(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrWebhookPayload, err)
	}

	return w.applySubscriptionState(ctx, &sub, event.Created)
}

// handleInvoiceEvent resolves the subscription behind an invoice with a
// secondary fetch; invoice events do not embed the subscription's status.
func (w *webhookService) handleInvoiceEvent(ctx context.Context, event stripe.Event) error {
	stripeSubID := extractInvoiceSubscriptionID(event.Data.Raw)
	if stripeSubID == "" {
		log.Printf("webhook: invoice event %s carries no subscription, skipping", event.ID)
		return nil
	}

	sub, err := w.gateway.GetSubscription(ctx, stripeSubID)
	if err != nil {
		log.Printf("webhook: failed to fetch subscription %s: %v", stripeSubID, err)
		return nil
	}

	return w.applySubscriptionState(ctx, sub, event.Created)
}

// extractInvoiceSubscriptionID digs the subscription id out of a raw invoice
// payload. Newer API versions nest it under parent.subscription_details;
// older ones carry it top-level.
func extractInvoiceSubscriptionID(raw json.RawMessage) string {
	var invoiceData map[string]interface{}
	if err := json.Unmarshal(raw, &invoiceData); err != nil {
		return ""
	}

	if parent, ok := invoiceData["parent"].(map[string]interface{}); ok {
		if details, ok := parent["subscription_details"].(map[string]interface{}); ok {
			if sub, ok := details["subscription"].(string); ok && sub != "" {
				return sub
			}
		}
	}

	if sub, ok := invoiceData["subscription"].(string); ok {
		return sub
	}
	return ""
}

// mapStatus collapses the provider's status space onto the local enum.
// Only active and trialing confer entitlement; everything else is inactive.
func mapStatus(providerStatus stripe.SubscriptionStatus) db_models.SubscriptionStatus {
	switch providerStatus {
	case stripe.SubscriptionStatusActive, stripe.SubscriptionStatusTrialing:
		return db_models.SubStatusActive
	default:
		return db_models.SubStatusInactive
	}
}

func (w *webhookService) applySubscriptionState(ctx context.Context, sub *stripe.Subscription, eventCreated int64) error {
	account, err := w.resolver.ResolveAccount(ctx, sub)
	if err != nil {
		return err
	}
	if account == nil {
		// Unresolvable events cannot self-resolve through retries; ack them
		// and rely on the next billing cycle or admin reconciliation.
		log.Printf("webhook: no account matches subscription %s, skipping", sub.ID)
		return nil
	}

	existing, err := w.subs.GetByAccountID(ctx, account.ID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil && existing.LastEventAt > eventCreated {
		log.Printf("webhook: stale event for account %s (stored %d > event %d), skipping",
			account.ID, existing.LastEventAt, eventCreated)
		return nil
	}

	var customerID string
	if sub.Customer != nil {
		customerID = sub.Customer.ID
	}

	record := &db_models.Subscription{
		AccountID:            account.ID,
		Email:                account.Email,
		Status:               mapStatus(sub.Status),
		CurrentPeriodEnd:     time.Now().Unix(),
		StripeSubscriptionID: sub.ID,
		StripeCustomerID:     customerID,
		LastEventAt:          eventCreated,
	}

	if err := w.subs.UpsertByAccountID(ctx, record); err != nil {
		log.Printf("webhook: failed to upsert subscription for account %s: %v", account.ID, err)
		return utils.ErrDatabaseError
	}

	log.Printf("webhook: account %s set to %s (event at %d)", account.ID, record.Status, eventCreated)
	return nil
}

// billingUserResolver is the default resolution strategy.
type billingUserResolver struct {
	accounts repositories.AccountRepository
	gateway  StripeGateway
}

func NewBillingUserResolver(accounts repositories.AccountRepository, gateway StripeGateway) BillingUserResolver {
	return &billingUserResolver{accounts: accounts, gateway: gateway}
}

func (r *billingUserResolver) ResolveAccount(ctx context.Context, sub *stripe.Subscription) (*db_models.Account, error) {
	// Checkout sessions stamp the application user id onto the subscription
	// metadata; prefer it because email matching breaks when users change
	// their address.
	if userID, ok := sub.Metadata["user_id"]; ok && userID != "" {
		account, err := r.accounts.FindById(ctx, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if account != nil {
			return account, nil
		}
		log.Printf("webhook: metadata user_id %s matches no account, falling back to email", userID)
	}

	if sub.Customer == nil || sub.Customer.ID == "" {
		return nil, nil
	}

	customer, err := r.gateway.GetCustomer(ctx, sub.Customer.ID)
	if err != nil {
		log.Printf("webhook: failed to fetch customer %s: %v", sub.Customer.ID, err)
		return nil, nil
	}
	if customer.Email == "" {
		return nil, nil
	}

	account, err := r.accounts.FindByEmail(ctx, customer.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return account, nil
}
