package leave

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	leaves := r.Group("/leaves")
	{
		leaves.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "leave", "submit"),
			h.Submit,
		)
		leaves.GET("/me", middleware.RBACAuthorize(rbacService, "leave", "read_own"), h.Mine)
		leaves.GET("/pending", middleware.RBACAuthorize(rbacService, "leave", "approve"), h.Pending)
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read"), h.List)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), h.GetByID)
		leaves.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "approve"), h.Approve)
		leaves.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "approve"), h.Reject)
	}
}
