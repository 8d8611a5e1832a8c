package middleware

import (
	"strings"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	autherrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/apperror"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/contextutil"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	IdentityKey = "identity"
	UserIDKey   = "user_id"
	RoleKey     = "role"
)

type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Authenticate verifies the bearer token (or access_token cookie) and stores
// the caller identity on the gin context and the request context.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		identity, err := verifier.Verify(tokenString)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Abort(c, httpErr.Status, httpErr.Code, httpErr.Message)
			return
		}

		uid := identity.UserID.String()
		c.Set(IdentityKey, identity)
		c.Set(UserIDKey, uid)
		c.Set(RoleKey, string(identity.Role))

		ctx := contextutil.WithUserID(c.Request.Context(), uid)
		if l := contextutil.GetLogger(ctx, nil); l != nil {
			ctx = contextutil.WithLogger(ctx, l.With(zap.String("user_id", uid), zap.String("role", string(identity.Role))))
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentIdentity returns the identity stored by Authenticate.
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

// RoleMiddleware lets only the listed roles through.
func RoleMiddleware(allowedRoles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			response.Abort(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Code, apperror.ErrUnauthorized.Message)
			return
		}

		for _, role := range allowedRoles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		response.Abort(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message)
	}
}
