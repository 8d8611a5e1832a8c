package department

import (
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
) {
	departments := r.Group("/departments")
	departments.Use(authMW)
	{
		departments.GET("", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetAll)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetByID)
		departments.POST("", middleware.RBACAuthorize(rbacService, "department", "manage"), h.Create)
		departments.PATCH("/:id", middleware.RBACAuthorize(rbacService, "department", "manage"), h.Update)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, "department", "manage"), h.Delete)
	}
}
