package bulkimport

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
	read := middleware.RBACAuthorize(rbacService, domain.ResourceImport, domain.ActionRead)

	idempotent := func(c *gin.Context) { c.Next() }
	if rdb != nil {
		idempotent = middleware.Idempotency(rdb)
	}

	imports := r.Group("/imports")
	imports.Use(middleware.AuthMiddleware())
	imports.Use(middleware.ContextLogger(logger))
	{
		imports.POST("/:kind",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceImport, domain.ActionCreate),
			idempotent,
			handler.Import,
		)
		imports.GET("/jobs", read, handler.GetJobs)
		imports.GET("/jobs/:id", read, handler.GetJob)
		imports.GET("/templates/:kind", read, handler.Template)
	}

	exports := r.Group("/exports")
	exports.Use(middleware.AuthMiddleware())
	exports.Use(middleware.ContextLogger(logger))
	{
		exports.GET("/employees",
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionReadAll),
			handler.ExportEmployees,
		)
		exports.GET("/payroll-runs/:id",
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionReadAll),
			handler.ExportPayrollRegister,
		)
	}
}
