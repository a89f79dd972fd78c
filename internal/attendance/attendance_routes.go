package attendance

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	attendance := r.Group("/attendance")
	{
		attendance.POST("/time-in",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "mark"),
			h.TimeIn,
		)
		attendance.POST("/time-out",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "mark"),
			h.TimeOut,
		)

		attendance.GET("/statistics", middleware.RBACAuthorize(rbacService, "attendance", "read_own"), h.MyStatistics)
		attendance.GET("/me", middleware.RBACAuthorize(rbacService, "attendance", "read_own"), h.MyRecords)
		attendance.GET("/me/tardiness", middleware.RBACAuthorize(rbacService, "attendance", "read_own"), h.MyTardiness)

		attendance.GET("/employees/:id", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.EmployeeRecords)
		attendance.GET("/employees/:id/statistics", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.EmployeeStatistics)
		attendance.GET("/employees/:id/tardiness", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.EmployeeTardiness)
	}
}
