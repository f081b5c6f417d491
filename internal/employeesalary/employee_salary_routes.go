package employeesalary

import (
	"sharda-hr/internal/domain"
	"sharda-hr/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	salaries := r.Group("/employee-salaries")
	salaries.Use(middleware.AuthMiddleware())
	{
		salaries.GET("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceSalary, domain.ActionReadAll),
			handler.GetAll,
		)
		salaries.GET("/effective",
			middleware.RBACAuthorize(rbacService, domain.ResourceSalary, domain.ActionRead),
			handler.GetEffective,
		)
		salaries.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceSalary, domain.ActionRead),
			handler.GetById,
		)
		salaries.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceSalary, domain.ActionCreate),
			handler.Create,
		)
		salaries.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceSalary, domain.ActionUpdate),
			handler.Update,
		)
		salaries.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, domain.ResourceSalary, domain.ActionDelete),
			handler.Delete,
		)
	}
}
