package report

import (
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the read-only views next to the leave routes.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
) {
	reports := r.Group("/leaves")
	reports.Use(authMW)
	{
		reports.GET("/calendar",
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.Calendar,
		)
		reports.GET("/stats",
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.Stats,
		)
		reports.GET("/upcoming",
			middleware.RBACAuthorize(rbacService, "report", "read_team"),
			handler.Upcoming,
		)
		reports.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "leave", "export"),
			handler.Export,
		)
		reports.GET("/reports/annual/:userId/:year",
			middleware.RBACAuthorize(rbacService, "report", "read_team"),
			handler.AnnualReport,
		)
		reports.GET("/reports/department/:deptId",
			middleware.RBACAuthorize(rbacService, "report", "read_department"),
			handler.DepartmentAnalytics,
		)
	}
}
