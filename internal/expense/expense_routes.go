package expense

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
	read := middleware.RBACAuthorize(rbacService, domain.ResourceExpense, domain.ActionRead)
	update := middleware.RBACAuthorize(rbacService, domain.ResourceExpense, domain.ActionUpdate)
	approve := middleware.RBACAuthorize(rbacService, domain.ResourceExpense, domain.ActionApprove)
	scope := middleware.RBACReadScope(rbacService, domain.ResourceExpense)

	expenses := r.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware())
	expenses.Use(middleware.ContextLogger(logger))
	{
		expenses.GET("", read, scope, handler.GetAll)
		expenses.GET("/:id", read, scope, handler.GetById)
		expenses.POST("",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceExpense, domain.ActionCreate),
			scope,
			handler.Create,
		)
		expenses.PUT("/:id", update, scope, handler.Update)
		expenses.POST("/:id/submit", update, scope, handler.Submit)
		expenses.POST("/:id/approve", approve, handler.Approve)
		expenses.POST("/:id/reject", approve, handler.Reject)
		expenses.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, domain.ResourceExpense, domain.ActionDelete),
			scope,
			handler.Delete,
		)
	}
}
