package leave

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
	read := middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionRead)
	scope := middleware.RBACReadScope(rbacService, domain.ResourceLeave)

	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("", read, scope, handler.GetAll)
		leaves.GET("/balances", read, scope, handler.GetBalances)
		leaves.POST("/balances/adjust",
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionReadAll),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionUpdate),
			handler.AdjustBalance,
		)
		leaves.GET("/:id", read, scope, handler.GetById)
		leaves.POST("",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionCreate),
			scope,
			handler.Create,
		)
		leaves.POST("/:id/submit",
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionUpdate),
			scope,
			handler.Submit,
		)
		leaves.POST("/:id/cancel",
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionUpdate),
			scope,
			handler.Cancel,
		)
		leaves.POST("/:id/approve",
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionApprove),
			handler.Approve,
		)
		leaves.POST("/:id/reject",
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionApprove),
			handler.Reject,
		)
		leaves.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionDelete),
			scope,
			handler.Delete,
		)
	}
}
