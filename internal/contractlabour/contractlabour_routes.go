package contractlabour

import (
	"sharda-hr/internal/domain"
	"sharda-hr/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	read := middleware.RBACAuthorize(rbacService, domain.ResourceContractLabour, domain.ActionRead)
	create := middleware.RBACAuthorize(rbacService, domain.ResourceContractLabour, domain.ActionCreate)
	update := middleware.RBACAuthorize(rbacService, domain.ResourceContractLabour, domain.ActionUpdate)
	remove := middleware.RBACAuthorize(rbacService, domain.ResourceContractLabour, domain.ActionDelete)

	group := r.Group("/contract-labour")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		contractors := group.Group("/contractors")
		contractors.GET("", read, handler.ListContractors)
		contractors.GET("/:id", read, handler.GetContractor)
		contractors.POST("", create, handler.CreateContractor)
		contractors.PUT("/:id", update, handler.UpdateContractor)
		contractors.DELETE("/:id", remove, handler.DeleteContractor)

		workers := group.Group("/workers")
		workers.GET("", read, handler.ListWorkers)
		workers.GET("/:id", read, handler.GetWorker)
		workers.POST("", create, handler.CreateWorker)
		workers.PUT("/:id", update, handler.UpdateWorker)
		workers.DELETE("/:id", remove, handler.DeleteWorker)

		attendance := group.Group("/attendance")
		attendance.GET("", read, handler.ListAttendance)
		attendance.POST("", update, handler.MarkAttendance)
		attendance.POST("/bulk", update, handler.BulkMarkAttendance)

		group.GET("/payroll/preview", read, handler.PreviewPayroll)
		group.POST("/payroll/finalize",
			middleware.RBACAuthorize(rbacService, domain.ResourceContractLabour, domain.ActionProcess),
			handler.FinalizePayroll,
		)
	}
}
