package feedback

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
	read := middleware.RBACAuthorize(rbacService, domain.ResourceFeedback, domain.ActionRead)
	readAll := middleware.RBACAuthorize(rbacService, domain.ResourceFeedback, domain.ActionReadAll)
	manage := middleware.RBACAuthorize(rbacService, domain.ResourceFeedback, domain.ActionUpdate)
	del := middleware.RBACAuthorize(rbacService, domain.ResourceFeedback, domain.ActionDelete)
	scope := middleware.RBACReadScope(rbacService, domain.ResourceFeedback)

	fb := r.Group("/feedback")
	fb.Use(middleware.AuthMiddleware())
	fb.Use(middleware.ContextLogger(logger))
	{
		cycles := fb.Group("/cycles")
		cycles.GET("", read, handler.GetCycles)
		cycles.GET("/:id", read, handler.GetCycle)
		cycles.POST("", manage, handler.CreateCycle)
		cycles.PUT("/:id", manage, handler.UpdateCycle)
		cycles.POST("/:id/activate", manage, handler.ActivateCycle)
		cycles.POST("/:id/close", manage, handler.CloseCycle)
		cycles.DELETE("/:id", del, handler.DeleteCycle)

		cycles.GET("/:id/assignments", readAll, handler.GetAssignments)
		cycles.POST("/:id/assignments", manage, handler.CreateAssignment)
		cycles.POST("/:id/assignments/auto", manage, handler.AutoAssign)
		cycles.GET("/:id/progress", readAll, handler.GetProgress)
		cycles.GET("/:id/reports/:employee_id", read, scope, handler.GetReport)

		assignments := fb.Group("/assignments")
		assignments.GET("/me", read, handler.MyAssignments)
		assignments.POST("/:id/submit",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceFeedback, domain.ActionCreate),
			handler.Submit,
		)
		assignments.DELETE("/:id", del, handler.DeleteAssignment)
	}
}
