package auth

import (
	"github.com/lu2aa/attendance-system/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	{
		// Login is rate limited per IP to slow credential stuffing
		authGroup.POST("/register", middleware.RateLimitByIP(rate.Limit(1), 5), h.Register)
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(2), 10), h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), h.Me)
	}
}
