package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"sekahub/internal/models/request_models"
	"sekahub/internal/services"
	"sekahub/pkg/utils"
)

type BillingController struct {
	billingService services.BillingService
	webhookService services.WebhookService
	entitlements   services.EntitlementService
}

func NewBillingController(
	billingService services.BillingService,
	webhookService services.WebhookService,
	entitlements services.EntitlementService,
) *BillingController {
	return &BillingController{
		billingService: billingService,
		webhookService: webhookService,
		entitlements:   entitlements,
	}
}

// CreateCheckoutSession godoc
// @Summary Create a hosted checkout session for a subscription price
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/create-checkout-session [post]
func (b *BillingController) CreateCheckoutSession(c *gin.Context) {
	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	session, err := b.billingService.CreateCheckoutSession(c.Request.Context(), userID, req.PriceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Checkout session created")
}

// CreatePortalSession godoc
// @Summary Open the billing portal for the caller
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/create-portal-session [post]
func (b *BillingController) CreatePortalSession(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	session, err := b.billingService.CreatePortalSession(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Portal session created")
}

// CancelSubscription cancels the caller's own subscription. The response
// shapes here are part of the public contract with the frontend, so they
// bypass the usual envelope.
// @Summary Cancel the caller's subscription
// @Tags Billing
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /cancel-subscription [post]
func (b *BillingController) CancelSubscription(c *gin.Context) {
	var req request_models.CancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := b.billingService.CancelSubscription(c.Request.Context(), userID, req.SubscriptionID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Subscription cancelled successfully"})
	case errors.Is(err, utils.ErrNoSubscription):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No subscription found"})
	case errors.Is(err, utils.ErrSubscriptionMismatch):
		c.JSON(http.StatusForbidden, gin.H{"error": "Subscription does not belong to this account"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel subscription"})
	}
}

// SubscriptionStatus godoc
// @Summary Get the caller's subscription state
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/subscription-status [get]
func (b *BillingController) SubscriptionStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status, err := b.entitlements.GetStatus(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "")
}

// HandleWebhook receives provider event deliveries. The body must reach the
// verifier byte-for-byte as sent, so it is read raw and never bound. Response
// codes drive the provider's retry behavior: 2xx acknowledges, 4xx drops the
// delivery as unusable, 5xx asks for a retry.
func (b *BillingController) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Webhook Error: could not read body")
		return
	}

	err = b.webhookService.HandleEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"received": true})
	case errors.Is(err, utils.ErrWebhookSignature), errors.Is(err, utils.ErrWebhookPayload):
		c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
	default:
		c.String(http.StatusInternalServerError, "Webhook handler failed")
	}
}
