package attendance

import (
	"sharda-hr/internal/domain"
	"sharda-hr/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, logger *zap.Logger) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	attendances.Use(middleware.ContextLogger(logger))
	{
		attendances.GET("",
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionRead),
			middleware.RBACReadScope(rbacService, domain.ResourceAttendance),
			h.GetAll,
		)
		attendances.GET("/summary",
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionRead),
			middleware.RBACReadScope(rbacService, domain.ResourceAttendance),
			h.MonthlySummary,
		)
		attendances.POST("/clock-in",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionCreate),
			h.ClockIn,
		)
		attendances.POST("/clock-out",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionCreate),
			h.ClockOut,
		)
		attendances.PUT("/mark",
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionUpdate),
			h.Mark,
		)
		attendances.POST("/bulk",
			middleware.RateLimitByUser(0.1, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionUpdate),
			h.BulkMark,
		)
	}
}
