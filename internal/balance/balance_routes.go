package balance

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
	balances := r.Group("/leave-balances")
	balances.Use(authMW)
	{
		balances.GET("/my",
			middleware.RBACAuthorize(rbacService, "balance", "read_own"),
			handler.GetMy,
		)
		balances.GET("/user/:userId",
			middleware.RBACAuthorize(rbacService, "balance", "read_user"),
			handler.GetUser,
		)
		balances.POST("/allocate",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "balance", "allocate"),
			handler.Allocate,
		)
		balances.PATCH("/:id",
			middleware.RBACAuthorize(rbacService, "balance", "adjust"),
			handler.Adjust,
		)
	}
}
