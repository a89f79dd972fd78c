package employee

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already carry authentication.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	employees := r.Group("/employees")
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.List,
		)
		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetByID,
		)
		employees.GET("/:id/salary-history",
			middleware.RBACAuthorize(rbacService, "salary", "read"),
			handler.GetSalaryHistory,
		)
		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.Create,
		)
		employees.PUT("/:id/salary",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "salary", "update"),
			handler.UpdateSalary,
		)
		employees.PUT("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "update"),
			handler.UpdateStatus,
		)
	}
}
