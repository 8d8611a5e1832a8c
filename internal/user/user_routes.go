package user

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
	users := r.Group("/users")
	users.Use(authMW)
	{
		users.GET("/me", handler.Me)

		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.GetAll,
		)
		users.GET("/:id",
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.GetByID,
		)
		users.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.Create,
		)
		users.PATCH("/:id",
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.Update,
		)
		users.PATCH("/:id/role",
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.UpdateRole,
		)
		users.POST("/:id/reset-password",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.ResetPassword,
		)
		users.POST("/:id/archive",
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.Archive,
		)
	}
}
