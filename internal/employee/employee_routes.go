package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			middleware.RBACReadScope(rbacService, domain.ResourceEmployee),
			handler.GetAll,
		)

		employees.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			handler.GetOptions,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			middleware.RBACReadScope(rbacService, domain.ResourceEmployee),
			handler.GetById,
		)

		employees.GET("/:id/reports",
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionReadAll),
			handler.GetDirectReports,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionCreate),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionUpdate),
			handler.Update,
		)

		employees.POST("/:id/exit",
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionUpdate),
			handler.Exit,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionDelete),
			handler.Delete,
		)
	}
}
