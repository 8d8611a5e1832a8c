package leavetype

import (
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
) {
	types := r.Group("/leave-types")
	types.Use(authMW)
	{
		types.GET("",
			middleware.RBACAuthorize(rbacService, "leave_type", "read"),
			handler.GetAll,
		)
		types.GET("/:id",
			middleware.RBACAuthorize(rbacService, "leave_type", "read"),
			handler.GetByID,
		)
		types.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "leave_type", "manage"),
			handler.Create,
		)
		types.PATCH("/:id",
			middleware.RBACAuthorize(rbacService, "leave_type", "manage"),
			handler.Update,
		)
		types.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, "leave_type", "manage"),
			handler.Delete,
		)
	}
}
