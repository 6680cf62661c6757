package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type staticChecker struct {
	entitled map[string]bool
	calls    int
}

func (s *staticChecker) IsEntitled(ctx context.Context, userID string) bool {
	s.calls++
	return s.entitled[userID]
}

func gateRouter(checker EntitlementChecker, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/premium", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}, RequireSubscription(checker), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRequireSubscription_EntitledPasses(t *testing.T) {
	checker := &staticChecker{entitled: map[string]bool{"alice": true}}
	r := gateRouter(checker, "alice")

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/premium", nil)
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "ok", resp.Body.String())
}

func TestRequireSubscription_NotEntitledForbidden(t *testing.T) {
	checker := &staticChecker{entitled: map[string]bool{}}
	r := gateRouter(checker, "bob")

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/premium", nil)
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestRequireSubscription_MissingUserUnauthorized(t *testing.T) {
	checker := &staticChecker{entitled: map[string]bool{"alice": true}}
	r := gateRouter(checker, "")

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/premium", nil)
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	// The checker is never consulted for anonymous requests.
	assert.Zero(t, checker.calls)
}

func TestRequireSubscription_ChecksEveryRequest(t *testing.T) {
	checker := &staticChecker{entitled: map[string]bool{"alice": true}}
	r := gateRouter(checker, "alice")

	for i := 0; i < 3; i++ {
		resp := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/premium", nil)
		r.ServeHTTP(resp, req)
		assert.Equal(t, http.StatusOK, resp.Code)
	}

	// No caching between requests; revocation must take effect immediately.
	assert.Equal(t, 3, checker.calls)

	checker.entitled["alice"] = false
	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/premium", nil)
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}
