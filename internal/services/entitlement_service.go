package services

import (
	"context"
	"log"

	"sekahub/internal/models/response_models"
	"sekahub/internal/repositories"
	"sekahub/pkg/utils"
)

// EntitlementService answers "may this user see premium content" from the
// subscription store. Checks run on every request; entitlement can flip
// between visits through webhooks.
type EntitlementService interface {
	// IsEntitled fails closed: a store error denies access, it never grants.
	IsEntitled(ctx context.Context, userID string) bool

	GetStatus(ctx context.Context, userID string) (*response_models.SubscriptionStatusResponse, error)
}

type entitlementService struct {
	subs repositories.SubscriptionRepository
}

func NewEntitlementService(subs repositories.SubscriptionRepository) EntitlementService {
	return &entitlementService{subs: subs}
}

func (e *entitlementService) IsEntitled(ctx context.Context, userID string) bool {
	sub, err := e.subs.GetByAccountID(ctx, userID)
	if err != nil {
		log.Printf("entitlement: lookup failed for %s, denying access: %v", userID, err)
		return false
	}
	return sub.Entitled()
}

func (e *entitlementService) GetStatus(ctx context.Context, userID string) (*response_models.SubscriptionStatusResponse, error) {
	sub, err := e.subs.GetByAccountID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if sub == nil {
		// Absence is indistinguishable from inactive for the caller.
		return &response_models.SubscriptionStatusResponse{
			Status:     "inactive",
			IsEntitled: false,
		}, nil
	}

	return &response_models.SubscriptionStatusResponse{
		Status:           string(sub.Status),
		CurrentPeriodEnd: sub.CurrentPeriodEnd,
		SubscriptionID:   sub.StripeSubscriptionID,
		IsEntitled:       sub.Entitled(),
	}, nil
}
