package rbac

import (
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(authMW)
	{
		group.GET("/permissions/me", handler.MyPermissions)
		// policy check, kept to admins
		group.POST("/enforce", middleware.RoleMiddleware(auth.RoleAdmin), handler.Enforce)
	}
}
