package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"sekahub/internal/models/db_models"
)

func TestIsEntitled_ActiveAndTrialingGrant(t *testing.T) {
	for _, status := range []db_models.SubscriptionStatus{db_models.SubStatusActive, db_models.SubStatusTrialing} {
		account := testAccount()
		subs := newFakeSubscriptionRepo()
		sub := storedSubscription(account.ID, status)
		subs.byAccount[account.ID.String()] = sub
		svc := NewEntitlementService(subs)

		assert.True(t, svc.IsEntitled(context.Background(), account.ID.String()), string(status))
	}
}

func TestIsEntitled_InactiveAndCanceledDeny(t *testing.T) {
	for _, status := range []db_models.SubscriptionStatus{db_models.SubStatusInactive, db_models.SubStatusCanceled} {
		account := testAccount()
		subs := newFakeSubscriptionRepo()
		subs.byAccount[account.ID.String()] = storedSubscription(account.ID, status)
		svc := NewEntitlementService(subs)

		assert.False(t, svc.IsEntitled(context.Background(), account.ID.String()), string(status))
	}
}

func TestIsEntitled_NoRecordDenies(t *testing.T) {
	svc := NewEntitlementService(newFakeSubscriptionRepo())

	assert.False(t, svc.IsEntitled(context.Background(), "no-such-user"))
}

func TestIsEntitled_StoreErrorDenies(t *testing.T) {
	subs := newFakeSubscriptionRepo()
	subs.getErr = errors.New("connection refused")
	svc := NewEntitlementService(subs)

	// Fail closed: an unreachable store must never grant access.
	assert.False(t, svc.IsEntitled(context.Background(), "any-user"))
}

func TestGetStatus_AbsenceReportsInactive(t *testing.T) {
	svc := NewEntitlementService(newFakeSubscriptionRepo())

	status, err := svc.GetStatus(context.Background(), "no-such-user")

	assert.NoError(t, err)
	assert.Equal(t, "inactive", status.Status)
	assert.False(t, status.IsEntitled)
	assert.Empty(t, status.SubscriptionID)
}

func TestGetStatus_ReportsStoredState(t *testing.T) {
	account := testAccount()
	subs := newFakeSubscriptionRepo()
	subs.byAccount[account.ID.String()] = storedSubscription(account.ID, db_models.SubStatusActive)
	svc := NewEntitlementService(subs)

	status, err := svc.GetStatus(context.Background(), account.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, "active", status.Status)
	assert.True(t, status.IsEntitled)
	assert.Equal(t, "sub_1", status.SubscriptionID)
}
