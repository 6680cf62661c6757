package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusInactive SubscriptionStatus = "inactive"
	SubStatusTrialing SubscriptionStatus = "trialing"
	SubStatusCanceled SubscriptionStatus = "canceled"
)

// Subscription mirrors the billing provider's view of a user's entitlement.
// At most one row per account; every write path upserts keyed on account_id.
// StripeSubscriptionID is indexed for reverse lookups only and is never the
// upsert key.
type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	// Denormalized copy of the billing email at time of last write, kept for
	// diagnostic matching only.
	Email string

	Status SubscriptionStatus `gorm:"index;default:inactive"`

	// Advisory display value; Status is the gate, not this timestamp.
	CurrentPeriodEnd int64

	StripeSubscriptionID string `gorm:"index"`
	StripeCustomerID     string `gorm:"index"`

	// Unix timestamp of the provider event that produced the current state.
	// Webhook deliveries older than this are discarded, so out-of-order
	// redelivery cannot roll the record back.
	LastEventAt int64

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}

// Entitled reports whether this record confers access to premium features.
func (s *Subscription) Entitled() bool {
	return s != nil && (s.Status == SubStatusActive || s.Status == SubStatusTrialing)
}
