package leavebalance

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	balances := r.Group("/leave-balances")
	{
		balances.GET("/me", middleware.RBACAuthorize(rbacService, "leave_balance", "read_own"), h.Mine)
		balances.GET("/employees/:id", middleware.RBACAuthorize(rbacService, "leave_balance", "read"), h.ByEmployee)

		balances.POST("/initialize",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "leave_balance", "manage"),
			h.Initialize,
		)
		balances.POST("/initialize-all",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "leave_balance", "manage"),
			h.InitializeAll,
		)
		balances.POST("/carry-over",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "leave_balance", "manage"),
			h.CarryOver,
		)
	}
}
