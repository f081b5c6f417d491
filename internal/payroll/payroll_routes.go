package payroll

import (
	"sharda-hr/internal/domain"
	"sharda-hr/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	readAll := middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionReadAll)
	read := middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionRead)
	scope := middleware.RBACReadScope(rbacService, domain.ResourcePayroll)

	idempotent := func(c *gin.Context) { c.Next() }
	if rdb != nil {
		idempotent = middleware.Idempotency(rdb)
	}

	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	payroll.Use(middleware.ContextLogger(logger))
	{
		runs := payroll.Group("/runs")
		runs.GET("", readAll, handler.ListRuns)
		runs.GET("/:id", readAll, handler.GetRun)
		runs.GET("/:id/payslips", readAll, handler.ListRunPayslips)
		runs.POST("",
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionCreate),
			idempotent,
			handler.CreateRun,
		)
		runs.POST("/:id/process",
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionProcess),
			idempotent,
			handler.ProcessRun,
		)
		runs.POST("/:id/lock",
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionLock),
			handler.LockRun,
		)
		runs.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionDelete),
			handler.DeleteRun,
		)

		payroll.GET("/preview", readAll, handler.Preview)
		payroll.GET("/payslips", read, scope, handler.ListPayslips)
		payroll.GET("/payslips/:id", read, scope, handler.GetPayslip)
		payroll.GET("/payslips/:id/download", read, scope, handler.DownloadPayslip)
	}
}
