package rbac

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service) {
	group := r.Group("/rbac")
	{
		group.POST("/check", handler.Check)
		group.GET("/roles", middleware.RBACAuthorize(service, "role", "read"), handler.ListRoles)
	}
}
