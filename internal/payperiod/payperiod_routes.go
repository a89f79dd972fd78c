package payperiod

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	periods := r.Group("/pay-periods")
	{
		periods.GET("", middleware.RBACAuthorize(rbacService, "pay_period", "read"), handler.List)
		periods.GET("/:id", middleware.RBACAuthorize(rbacService, "pay_period", "read"), handler.GetByID)
		periods.POST("", middleware.RBACAuthorize(rbacService, "pay_period", "create"), handler.Create)
		periods.POST("/semi-monthly", middleware.RBACAuthorize(rbacService, "pay_period", "create"), handler.GenerateSemiMonthly)
	}
}
