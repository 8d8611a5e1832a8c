package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	autherrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	identity auth.Identity
	err      error
	got      string
}

func (f *fakeVerifier) Verify(token string) (auth.Identity, error) {
	f.got = token
	if token == "" {
		return auth.Identity{}, autherrors.ErrTokenMissing
	}
	return f.identity, f.err
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("bearer token sets identity", func(t *testing.T) {
		v := &fakeVerifier{identity: auth.Identity{UserID: userID, Role: auth.RoleManager}}
		r := setupRouter()
		r.GET("/me", middleware.Authenticate(v), func(c *gin.Context) {
			id, ok := middleware.CurrentIdentity(c)
			require.True(t, ok)
			assert.Equal(t, userID, id.UserID)
			assert.Equal(t, userID.String(), c.GetString(middleware.UserIDKey))
			assert.Equal(t, userID.String(), contextutil.GetUserID(c.Request.Context()))
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer abc.def.ghi")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "abc.def.ghi", v.got)
	})

	t.Run("falls back to cookie", func(t *testing.T) {
		v := &fakeVerifier{identity: auth.Identity{UserID: userID, Role: auth.RoleEmployee}}
		r := setupRouter()
		r.GET("/me", middleware.Authenticate(v), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "cookie-token", v.got)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		r := setupRouter()
		r.GET("/me", middleware.Authenticate(&fakeVerifier{}), func(c *gin.Context) {
			t.Fatal("handler must not run")
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("expired token is 401", func(t *testing.T) {
		r := setupRouter()
		r.GET("/me", middleware.Authenticate(&fakeVerifier{err: autherrors.ErrTokenExpired}), func(c *gin.Context) {
			t.Fatal("handler must not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer old")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token has expired")
	})
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		role   auth.Role
		status int
	}{
		{"admin allowed", auth.RoleAdmin, http.StatusOK},
		{"manager allowed", auth.RoleManager, http.StatusOK},
		{"employee forbidden", auth.RoleEmployee, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter()
			r.GET("/team",
				func(c *gin.Context) {
					c.Set(middleware.IdentityKey, auth.Identity{UserID: uuid.New(), Role: tt.role})
				},
				middleware.RoleMiddleware(auth.RoleManager, auth.RoleAdmin),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/team", nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}

	t.Run("no identity is 401", func(t *testing.T) {
		r := setupRouter()
		r.GET("/team", middleware.RoleMiddleware(auth.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/team", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
