package auth

import (
	"sharda-hr/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
		auth.POST("/logout", handler.Logout)
		auth.POST("/register", middleware.RateLimitByIP(0.1, 3), handler.Register)
	}
}
