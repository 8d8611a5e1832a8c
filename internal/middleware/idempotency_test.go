package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idempotentRouter(t *testing.T, handler gin.HandlerFunc) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	r := setupRouter()
	r.POST("/leaves",
		func(c *gin.Context) { c.Set(middleware.UserIDKey, "user-1") },
		middleware.Idempotency(rdb),
		handler,
	)
	return r, mock
}

func TestIdempotency(t *testing.T) {
	cacheKey := "idemp:/leaves:user-1:key-1"
	lockKey := cacheKey + ":lock"

	t.Run("first request stores response", func(t *testing.T) {
		r, mock := idempotentRouter(t, func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"id": "leave-1"})
		})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, `{"status":201,"body":{"id":"leave-1"}}`, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replays cached response", func(t *testing.T) {
		r, mock := idempotentRouter(t, func(c *gin.Context) {
			t.Fatal("handler must not run on replay")
		})

		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true,"data":{"id":"leave-1"}}}`)

		req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, `{"ok":true,"data":{"id":"leave-1"}}`, w.Body.String())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in flight duplicate is 409", func(t *testing.T) {
		r, mock := idempotentRouter(t, func(c *gin.Context) {
			t.Fatal("handler must not run while locked")
		})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "REQUEST_IN_PROGRESS")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed request is not cached", func(t *testing.T) {
		r, mock := idempotentRouter(t, func(c *gin.Context) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false})
		})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectDel(lockKey).SetVal(1)

		req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key passes through", func(t *testing.T) {
		r, mock := idempotentRouter(t, func(c *gin.Context) { c.Status(http.StatusCreated) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
