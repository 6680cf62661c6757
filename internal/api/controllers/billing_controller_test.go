package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"sekahub/internal/models/response_models"
	"sekahub/internal/services"
	"sekahub/internal/testutils"
	"sekahub/pkg/utils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	log.SetOutput(io.Discard)
	exitCode := m.Run()
	log.SetOutput(os.Stdout)
	os.Exit(exitCode)
}

type fakeWebhookService struct {
	err        error
	gotPayload []byte
	gotHeader  string
}

func (f *fakeWebhookService) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	f.gotPayload = payload
	f.gotHeader = sigHeader
	return f.err
}

type fakeBillingService struct {
	cancelErr   error
	cancelCalls int
	gotClientID string
}

func (f *fakeBillingService) CreateCheckoutSession(ctx context.Context, accountID string, priceID string) (*response_models.CheckoutSessionResponse, error) {
	return &response_models.CheckoutSessionResponse{SessionID: "cs_test", URL: "https://checkout.example"}, nil
}

func (f *fakeBillingService) CreatePortalSession(ctx context.Context, accountID string) (*response_models.PortalSessionResponse, error) {
	return &response_models.PortalSessionResponse{URL: "https://portal.example"}, nil
}

func (f *fakeBillingService) CancelSubscription(ctx context.Context, accountID string, clientSubID string) error {
	f.cancelCalls++
	f.gotClientID = clientSubID
	return f.cancelErr
}

type fakeEntitlements struct {
	status *response_models.SubscriptionStatusResponse
}

func (f *fakeEntitlements) IsEntitled(ctx context.Context, userID string) bool {
	return f.status != nil && f.status.IsEntitled
}

func (f *fakeEntitlements) GetStatus(ctx context.Context, userID string) (*response_models.SubscriptionStatusResponse, error) {
	return f.status, nil
}

var _ services.WebhookService = (*fakeWebhookService)(nil)
var _ services.BillingService = (*fakeBillingService)(nil)
var _ services.EntitlementService = (*fakeEntitlements)(nil)

func webhookRouter(controller *BillingController) *gin.Engine {
	r := testutils.SetupTestRouter()
	r.HandleMethodNotAllowed = true
	r.POST("/api/stripe-webhook", controller.HandleWebhook)
	return r
}

func TestHandleWebhook_AcknowledgesWithReceivedTrue(t *testing.T) {
	webhooks := &fakeWebhookService{}
	controller := NewBillingController(&fakeBillingService{}, webhooks, &fakeEntitlements{})
	r := webhookRouter(controller)

	body := []byte(`{"id":"evt_1","type":"customer.subscription.updated"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/stripe-webhook", bytes.NewReader(body))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]bool
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &respBody))
	assert.True(t, respBody["received"])

	// The handler must pass the body through untouched for verification.
	assert.Equal(t, body, webhooks.gotPayload)
	assert.Equal(t, "t=1,v1=abc", webhooks.gotHeader)
}

func TestHandleWebhook_BadSignatureIs400(t *testing.T) {
	webhooks := &fakeWebhookService{err: fmt.Errorf("%w: bad mac", utils.ErrWebhookSignature)}
	controller := NewBillingController(&fakeBillingService{}, webhooks, &fakeEntitlements{})
	r := webhookRouter(controller)

	req, _ := http.NewRequest(http.MethodPost, "/api/stripe-webhook", bytes.NewReader([]byte(`{}`)))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Webhook Error:")
}

func TestHandleWebhook_StoreFailureIs500ForRetry(t *testing.T) {
	webhooks := &fakeWebhookService{err: utils.ErrDatabaseError}
	controller := NewBillingController(&fakeBillingService{}, webhooks, &fakeEntitlements{})
	r := webhookRouter(controller)

	req, _ := http.NewRequest(http.MethodPost, "/api/stripe-webhook", bytes.NewReader([]byte(`{}`)))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHandleWebhook_GetIsMethodNotAllowed(t *testing.T) {
	controller := NewBillingController(&fakeBillingService{}, &fakeWebhookService{}, &fakeEntitlements{})
	r := webhookRouter(controller)

	req, _ := http.NewRequest(http.MethodGet, "/api/stripe-webhook", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}

func cancelRouter(controller *BillingController, userID string) *gin.Engine {
	r := testutils.SetupTestRouter()
	r.POST("/api/cancel-subscription", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		controller.CancelSubscription(c)
	})
	return r
}

func TestCancelSubscription_Success(t *testing.T) {
	billing := &fakeBillingService{}
	controller := NewBillingController(billing, &fakeWebhookService{}, &fakeEntitlements{})
	r := cancelRouter(controller, "user-1")

	req, _ := http.NewRequest(http.MethodPost, "/api/cancel-subscription",
		bytes.NewReader([]byte(`{"subscriptionId":"sub_1"}`)))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Subscription cancelled successfully", respBody["message"])
	assert.Equal(t, 1, billing.cancelCalls)
	assert.Equal(t, "sub_1", billing.gotClientID)
}

func TestCancelSubscription_NoSubscriptionIs400(t *testing.T) {
	billing := &fakeBillingService{cancelErr: utils.ErrNoSubscription}
	controller := NewBillingController(billing, &fakeWebhookService{}, &fakeEntitlements{})
	r := cancelRouter(controller, "user-1")

	req, _ := http.NewRequest(http.MethodPost, "/api/cancel-subscription", bytes.NewReader([]byte(`{}`)))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCancelSubscription_MismatchIs403(t *testing.T) {
	billing := &fakeBillingService{cancelErr: utils.ErrSubscriptionMismatch}
	controller := NewBillingController(billing, &fakeWebhookService{}, &fakeEntitlements{})
	r := cancelRouter(controller, "user-1")

	req, _ := http.NewRequest(http.MethodPost, "/api/cancel-subscription",
		bytes.NewReader([]byte(`{"subscriptionId":"sub_other"}`)))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestCancelSubscription_ProviderFailureIs500(t *testing.T) {
	billing := &fakeBillingService{cancelErr: errors.New("provider down")}
	controller := NewBillingController(billing, &fakeWebhookService{}, &fakeEntitlements{})
	r := cancelRouter(controller, "user-1")

	req, _ := http.NewRequest(http.MethodPost, "/api/cancel-subscription", bytes.NewReader([]byte(`{}`)))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestCancelSubscription_AnonymousIs401(t *testing.T) {
	billing := &fakeBillingService{}
	controller := NewBillingController(billing, &fakeWebhookService{}, &fakeEntitlements{})
	r := cancelRouter(controller, "")

	req, _ := http.NewRequest(http.MethodPost, "/api/cancel-subscription", bytes.NewReader([]byte(`{}`)))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Zero(t, billing.cancelCalls)
}
