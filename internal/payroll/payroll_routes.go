package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	{
		process := payrolls.Group("", middleware.RBACAuthorize(rbacService, "payroll", "process"))
		if redisClient != nil {
			process.Use(middleware.Idempotency(redisClient))
		}
		process.POST("/process", handler.ProcessPeriod)
		process.POST("/process-employee", handler.ProcessEmployee)
		payrolls.POST("/process-async", middleware.RBACAuthorize(rbacService, "payroll", "process"), handler.RequestRun)

		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.ListByPeriod)
		payrolls.GET("/summary", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.Summary)
		payrolls.GET("/record", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetByEmployeeAndPeriod)
		payrolls.GET("/preview", middleware.RBACAuthorize(rbacService, "payroll", "process"), handler.Preview)

		payrolls.GET("/me", middleware.RBACAuthorize(rbacService, "payroll", "read_own"), handler.Mine)
		payrolls.GET("/me/payslip", middleware.RBACAuthorize(rbacService, "payroll", "read_own"), handler.MyPayslip)
	}
}
