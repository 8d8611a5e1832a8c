package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimitByUser(t *testing.T) {
	r := setupRouter()
	r.GET("/reports",
		func(c *gin.Context) { c.Set(middleware.UserIDKey, c.Query("u")) },
		middleware.RateLimitByUser(rate.Limit(0.001), 2),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	hit := func(user string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports?u="+user, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("a"))
	assert.Equal(t, http.StatusOK, hit("a"))
	assert.Equal(t, http.StatusTooManyRequests, hit("a"))
	assert.Equal(t, http.StatusOK, hit("b"), "buckets are per user")
	assert.Equal(t, http.StatusOK, hit(""), "anonymous requests are not limited")
	assert.Equal(t, http.StatusOK, hit(""))
	assert.Equal(t, http.StatusOK, hit(""))
}

func TestRequestID(t *testing.T) {
	r := setupRouter()
	r.GET("/ping", middleware.RequestID(), func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 27)
	})
}
