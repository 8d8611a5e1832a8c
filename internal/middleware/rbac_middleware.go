package middleware

import (
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/apperror"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/contextutil"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by anything that can answer a role/resource/action
// question, so this package does not depend on the rbac package.
type RBACService interface {
	Enforce(role, resource, action string) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			response.Abort(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Code, apperror.ErrUnauthorized.Message)
			return
		}

		allowed, err := service.Enforce(string(identity.Role), resource, action)
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), nil).Error("rbac enforce failed",
				zap.String("resource", resource), zap.String("action", action), zap.Error(err))
			response.Abort(c, apperror.ErrInternal.HTTPStatus, apperror.ErrInternal.Code, apperror.ErrInternal.Message)
			return
		}

		if !allowed {
			response.Abort(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code,
				"You do not have permission to "+action+" "+resource)
			return
		}
		c.Next()
	}
}
