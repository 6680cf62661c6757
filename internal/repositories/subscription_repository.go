package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"sekahub/internal/models/db_models"
)

// SubscriptionRepository is the entitlement store. The canonical key is
// account_id everywhere; the stripe subscription id exists only for reverse
// lookups, so concurrent webhook and cancellation writes for one user always
// land on the same row.
type SubscriptionRepository interface {
	GetByAccountID(ctx context.Context, accountID string) (*db_models.Subscription, error)
	GetByStripeSubscriptionID(ctx context.Context, stripeSubID string) (*db_models.Subscription, error)
	UpsertByAccountID(ctx context.Context, sub *db_models.Subscription) error
	UpdateStatus(ctx context.Context, accountID uuid.UUID, status db_models.SubscriptionStatus) error
	CountByStatus(ctx context.Context, status db_models.SubscriptionStatus) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (s *subscriptionRepository) GetByAccountID(ctx context.Context, accountID string) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).First(&sub, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *subscriptionRepository) GetByStripeSubscriptionID(ctx context.Context, stripeSubID string) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).First(&sub, "stripe_subscription_id = ?", stripeSubID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// UpsertByAccountID inserts or overwrites the single row for sub.AccountID.
// Replaying the same provider event therefore converges to the same record.
func (s *subscriptionRepository) UpsertByAccountID(ctx context.Context, sub *db_models.Subscription) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email",
				"status",
				"current_period_end",
				"stripe_subscription_id",
				"stripe_customer_id",
				"last_event_at",
				"updated_at",
			}),
		}).
		Create(sub).Error
}

func (s *subscriptionRepository) UpdateStatus(ctx context.Context, accountID uuid.UUID, status db_models.SubscriptionStatus) error {
	return s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("account_id = ?", accountID).
		Update("status", status).Error
}

func (s *subscriptionRepository) CountByStatus(ctx context.Context, status db_models.SubscriptionStatus) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
