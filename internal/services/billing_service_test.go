package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"sekahub/internal/models/db_models"
	"sekahub/pkg/utils"
)

func storedSubscription(accountID uuid.UUID, status db_models.SubscriptionStatus) *db_models.Subscription {
	return &db_models.Subscription{
		AccountID:            accountID,
		Status:               status,
		StripeSubscriptionID: "sub_1",
		StripeCustomerID:     "cus_1",
	}
}

func TestCancelSubscription_DerivesIDFromStore(t *testing.T) {
	account := testAccount()
	subs := newFakeSubscriptionRepo()
	subs.byAccount[account.ID.String()] = storedSubscription(account.ID, db_models.SubStatusActive)
	gateway := &fakeGateway{}
	svc := NewBillingService(gateway, newFakeAccountRepo(account), subs)

	// No client-supplied id at all; the store decides what gets cancelled.
	err := svc.CancelSubscription(context.Background(), account.ID.String(), "")

	assert.NoError(t, err)
	assert.Equal(t, []string{"sub_1"}, gateway.canceledIDs)
	assert.Equal(t, db_models.SubStatusCanceled, subs.byAccount[account.ID.String()].Status)
}

func TestCancelSubscription_MatchingClientIDAccepted(t *testing.T) {
	account := testAccount()
	subs := newFakeSubscriptionRepo()
	subs.byAccount[account.ID.String()] = storedSubscription(account.ID, db_models.SubStatusActive)
	gateway := &fakeGateway{}
	svc := NewBillingService(gateway, newFakeAccountRepo(account), subs)

	err := svc.CancelSubscription(context.Background(), account.ID.String(), "sub_1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"sub_1"}, gateway.canceledIDs)
}

func TestCancelSubscription_ForeignIDRejected(t *testing.T) {
	account := testAccount()
	subs := newFakeSubscriptionRepo()
	subs.byAccount[account.ID.String()] = storedSubscription(account.ID, db_models.SubStatusActive)
	gateway := &fakeGateway{}
	svc := NewBillingService(gateway, newFakeAccountRepo(account), subs)

	err := svc.CancelSubscription(context.Background(), account.ID.String(), "sub_somebody_else")

	assert.ErrorIs(t, err, utils.ErrSubscriptionMismatch)
	assert.Empty(t, gateway.canceledIDs)
	assert.Equal(t, db_models.SubStatusActive, subs.byAccount[account.ID.String()].Status)
}

func TestCancelSubscription_NoSubscriptionOnFile(t *testing.T) {
	account := testAccount()
	gateway := &fakeGateway{}
	svc := NewBillingService(gateway, newFakeAccountRepo(account), newFakeSubscriptionRepo())

	err := svc.CancelSubscription(context.Background(), account.ID.String(), "")

	assert.ErrorIs(t, err, utils.ErrNoSubscription)
	assert.Empty(t, gateway.canceledIDs)
}

func TestCancelSubscription_ProviderFailureLeavesStoreUntouched(t *testing.T) {
	account := testAccount()
	subs := newFakeSubscriptionRepo()
	subs.byAccount[account.ID.String()] = storedSubscription(account.ID, db_models.SubStatusActive)
	gateway := &fakeGateway{cancelErr: errors.New("stripe is down")}
	svc := NewBillingService(gateway, newFakeAccountRepo(account), subs)

	err := svc.CancelSubscription(context.Background(), account.ID.String(), "")

	assert.ErrorIs(t, err, utils.ErrPaymentProvider)
	// The local record still says active; the user keeps what they pay for.
	assert.Equal(t, db_models.SubStatusActive, subs.byAccount[account.ID.String()].Status)
}

func TestCancelSubscription_LocalWriteFailureStillSucceeds(t *testing.T) {
	account := testAccount()
	subs := newFakeSubscriptionRepo()
	subs.byAccount[account.ID.String()] = storedSubscription(account.ID, db_models.SubStatusActive)
	subs.updateErr = errors.New("connection reset")
	gateway := &fakeGateway{}
	svc := NewBillingService(gateway, newFakeAccountRepo(account), subs)

	// Provider already cancelled; the deleted webhook will reconcile the
	// local record, so the caller sees success.
	err := svc.CancelSubscription(context.Background(), account.ID.String(), "")

	assert.NoError(t, err)
	assert.Equal(t, []string{"sub_1"}, gateway.canceledIDs)
}

func TestCreateCheckoutSession_UnknownAccount(t *testing.T) {
	svc := NewBillingService(&fakeGateway{}, newFakeAccountRepo(), newFakeSubscriptionRepo())

	_, err := svc.CreateCheckoutSession(context.Background(), uuid.NewString(), "price_1")

	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestCreateCheckoutSession_ReturnsSession(t *testing.T) {
	account := testAccount()
	svc := NewBillingService(&fakeGateway{}, newFakeAccountRepo(account), newFakeSubscriptionRepo())

	session, err := svc.CreateCheckoutSession(context.Background(), account.ID.String(), "price_1")

	assert.NoError(t, err)
	assert.Equal(t, "cs_test", session.SessionID)
	assert.NotEmpty(t, session.URL)
}

func TestCreatePortalSession_RequiresStoredCustomer(t *testing.T) {
	account := testAccount()
	svc := NewBillingService(&fakeGateway{}, newFakeAccountRepo(account), newFakeSubscriptionRepo())

	_, err := svc.CreatePortalSession(context.Background(), account.ID.String())

	assert.ErrorIs(t, err, utils.ErrNoSubscription)
}

func TestCreatePortalSession_ReturnsPortalURL(t *testing.T) {
	account := testAccount()
	subs := newFakeSubscriptionRepo()
	subs.byAccount[account.ID.String()] = storedSubscription(account.ID, db_models.SubStatusActive)
	svc := NewBillingService(&fakeGateway{}, newFakeAccountRepo(account), subs)

	session, err := svc.CreatePortalSession(context.Background(), account.ID.String())

	assert.NoError(t, err)
	assert.NotEmpty(t, session.URL)
}
