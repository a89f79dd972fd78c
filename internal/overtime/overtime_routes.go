package overtime

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	overtimes := r.Group("/overtimes")
	{
		overtimes.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "overtime", "submit"),
			h.Submit,
		)
		overtimes.GET("/me", middleware.RBACAuthorize(rbacService, "overtime", "read_own"), h.Mine)
		overtimes.GET("/pending", middleware.RBACAuthorize(rbacService, "overtime", "approve"), h.Pending)
		overtimes.GET("", middleware.RBACAuthorize(rbacService, "overtime", "read"), h.List)
		overtimes.GET("/:id", middleware.RBACAuthorize(rbacService, "overtime", "read"), h.GetByID)
		overtimes.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "overtime", "approve"), h.Approve)
		overtimes.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "overtime", "approve"), h.Reject)
	}
}
