package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openhrm/leave_workflow_app/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddlewareRejectsBadFormat(t *testing.T) {
	handler, err := middleware.RateLimitMiddleware("not-a-rate")

	require.Error(t, err)
	assert.Nil(t, handler)
}

func TestRateLimitMiddlewareAllowsWithinLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler, err := middleware.RateLimitMiddleware("100-M")
	require.NoError(t, err)

	router := gin.New()
	router.Use(handler)
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
