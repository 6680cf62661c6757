package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"sekahub/internal/models/db_models"
	"sekahub/internal/models/request_models"
	mem "sekahub/pkg/memcache"
	"sekahub/pkg/utils"
)

type fakeMailService struct {
	resetTokens []string
	resetEmails []string
}

func (f *fakeMailService) SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error {
	return nil
}

func (f *fakeMailService) SendMailToResetPassword(to, token string) error {
	f.resetEmails = append(f.resetEmails, to)
	f.resetTokens = append(f.resetTokens, token)
	return nil
}

func newTestAccountService(accounts *fakeAccountRepo, subs *fakeSubscriptionRepo, mail *fakeMailService) AccountServiceInterface {
	return NewAccountService(accounts, subs, mail, mem.NewResetTokens())
}

func TestCreateAccount_DuplicateEmailRejected(t *testing.T) {
	existing := testAccount()
	svc := newTestAccountService(newFakeAccountRepo(existing), newFakeSubscriptionRepo(), &fakeMailService{})

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:    existing.Email,
		Password: "password123",
	})

	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestCreateAccountAndLogin(t *testing.T) {
	accounts := newFakeAccountRepo()
	subs := newFakeSubscriptionRepo()
	svc := newTestAccountService(accounts, subs, &fakeMailService{})

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Password:    "password123",
	})
	assert.NoError(t, err)

	// Stored hash must not be the plaintext.
	stored := accounts.byEmail["alice@example.com"]
	if assert.NotNil(t, stored) {
		assert.NotEqual(t, "password123", stored.PasswordHash)
	}

	response, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.False(t, response.IsUserHavePremium)
}

func TestLogin_WrongPassword(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := newTestAccountService(accounts, newFakeSubscriptionRepo(), &fakeMailService{})

	assert.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:    "bob@example.com",
		Password: "correct-password",
	}))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_ReportsPremiumWhenEntitled(t *testing.T) {
	accounts := newFakeAccountRepo()
	subs := newFakeSubscriptionRepo()
	svc := newTestAccountService(accounts, subs, &fakeMailService{})

	assert.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:    "premium@example.com",
		Password: "password123",
	}))
	account := accounts.byEmail["premium@example.com"]
	subs.byAccount[account.ID.String()] = storedSubscription(account.ID, db_models.SubStatusActive)

	response, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "premium@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.True(t, response.IsUserHavePremium)
}

func TestForgotPassword_UnknownEmailStaysQuiet(t *testing.T) {
	mail := &fakeMailService{}
	svc := newTestAccountService(newFakeAccountRepo(), newFakeSubscriptionRepo(), mail)

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.Empty(t, mail.resetEmails)
}

func TestForgotAndResetPassword_RoundTrip(t *testing.T) {
	accounts := newFakeAccountRepo()
	mail := &fakeMailService{}
	svc := newTestAccountService(accounts, newFakeSubscriptionRepo(), mail)

	assert.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:    "carol@example.com",
		Password: "old-password",
	}))

	assert.NoError(t, svc.ForgotPassword(context.Background(), "carol@example.com"))
	if !assert.Len(t, mail.resetTokens, 1) {
		return
	}

	err := svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Token:       mail.resetTokens[0],
		NewPassword: "new-password",
	})
	assert.NoError(t, err)

	// The token is single-use.
	err = svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Token:       mail.resetTokens[0],
		NewPassword: "another-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
}
