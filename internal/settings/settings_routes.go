package settings

import (
	"sharda-hr/internal/domain"
	"sharda-hr/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
) {
	g := r.Group("/settings")
	g.Use(middleware.AuthMiddleware())
	{
		read := middleware.RBACAuthorize(rbacService, domain.ResourceSettings, domain.ActionRead)
		update := middleware.RBACAuthorize(rbacService, domain.ResourceSettings, domain.ActionUpdate)

		g.GET("", read, h.Get)
		g.GET("/defaults", read, h.Defaults)
		g.PUT("", update, h.Update)

		g.GET("/deduction-rules", read, h.ListRules)
		g.GET("/deduction-rules/:id", read, h.GetRule)
		g.POST("/deduction-rules", update, h.CreateRule)
		g.PUT("/deduction-rules/:id", update, h.UpdateRule)
		g.DELETE("/deduction-rules/:id", update, h.DeleteRule)
	}
}
