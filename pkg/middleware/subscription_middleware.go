package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"sekahub/pkg/utils"
)

// EntitlementChecker reports whether a user currently holds an entitlement.
// Any lookup failure must be reported as not entitled (fail closed).
type EntitlementChecker interface {
	IsEntitled(ctx context.Context, userID string) bool
}

// RequireSubscription guards premium routes. It runs after JWTAuthMiddleware
// and re-checks the subscription on every request; entitlement can change
// between visits through webhooks, so nothing is cached on the session.
func RequireSubscription(checker EntitlementChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if !checker.IsEntitled(c.Request.Context(), userID) {
			utils.RespondError(c, http.StatusForbidden, "Active subscription required")
			c.Abort()
			return
		}

		c.Next()
	}
}
