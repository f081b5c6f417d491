package rbac

import (
	"sharda-hr/internal/domain"
	"sharda-hr/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/roles", middleware.RBACAuthorize(service, domain.ResourceRole, domain.ActionRead), handler.ListRoles)
		group.POST("/roles/assign", middleware.RBACAuthorize(service, domain.ResourceRole, domain.ActionUpdate), handler.AssignRole)
		group.POST("/roles/seed", middleware.RBACAuthorize(service, domain.ResourceRole, domain.ActionCreate), handler.SeedDefaults)
	}
}
