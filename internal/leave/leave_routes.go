package leave

import (
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /leaves. idempotency guards creation and may be nil.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
	idempotency gin.HandlerFunc,
) {
	leaves := r.Group("/leaves")
	leaves.Use(authMW)
	{
		create := []gin.HandlerFunc{
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "leave", "create"),
		}
		if idempotency != nil {
			create = append(create, idempotency)
		}
		leaves.POST("", append(create, handler.Create)...)

		leaves.GET("/my",
			middleware.RBACAuthorize(rbacService, "leave", "read_own"),
			handler.ListMine,
		)
		leaves.GET("/team",
			middleware.RBACAuthorize(rbacService, "leave", "read_team"),
			handler.ListTeam,
		)
		leaves.GET("",
			middleware.RBACAuthorize(rbacService, "leave", "read_all"),
			handler.ListAll,
		)
		leaves.GET("/:id",
			middleware.RBACAuthorize(rbacService, "leave", "read_own"),
			handler.GetByID,
		)
		leaves.PATCH("/:id/status",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "leave", "review"),
			handler.UpdateStatus,
		)
		leaves.PATCH("/:id/cancel",
			middleware.RBACAuthorize(rbacService, "leave", "cancel"),
			handler.Cancel,
		)
		leaves.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, "leave", "delete"),
			handler.Delete,
		)
	}
}
