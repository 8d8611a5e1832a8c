package workflow

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
	workflows := r.Group("/workflows")
	workflows.Use(authMW, middleware.RBACAuthorize(rbacService, "workflow", "manage"))
	{
		workflows.GET("", handler.GetAll)
		workflows.GET("/leave-type/:leaveTypeId", handler.GetByLeaveType)
		workflows.POST("", handler.Create)
		workflows.PATCH("/:id", handler.Update)
		workflows.DELETE("/:id", handler.Delete)
	}
}
