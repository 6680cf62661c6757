package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func traceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

func TestTraceID_GeneratedWhenAbsent(t *testing.T) {
	r := traceRouter()

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(resp, req)

	id := resp.Header().Get("X-Trace-ID")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, resp.Body.String())
}

func TestTraceID_CallerSuppliedIDPropagates(t *testing.T) {
	r := traceRouter()

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", "delivery-attempt-7")
	r.ServeHTTP(resp, req)

	assert.Equal(t, "delivery-attempt-7", resp.Header().Get("X-Trace-ID"))
	assert.Equal(t, "delivery-attempt-7", resp.Body.String())
}

func TestTraceID_OversizedHeaderReplaced(t *testing.T) {
	r := traceRouter()

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", strings.Repeat("a", 65))
	r.ServeHTTP(resp, req)

	id := resp.Header().Get("X-Trace-ID")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}
