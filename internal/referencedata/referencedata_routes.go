package referencedata

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	leaveTypes := r.Group("/leave-types")
	{
		leaveTypes.GET("", handler.ListLeaveTypes)
		leaveTypes.POST("", middleware.RBACAuthorize(rbacService, "reference_data", "manage"), handler.CreateLeaveType)
	}

	benefits := r.Group("/position-benefits")
	{
		benefits.GET("/:positionId", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.ListBenefits)
		benefits.POST("", middleware.RBACAuthorize(rbacService, "reference_data", "manage"), handler.CreateBenefit)
	}
}
