package schedule

import (
	"github.com/lu2aa/attendance-system/internal/authz"
	"github.com/lu2aa/attendance-system/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authzService authz.Service) {
	schedules := r.Group("/schedule")
	schedules.Use(middleware.AuthMiddleware())
	{
		schedules.GET("", middleware.Authorize(authzService, "schedule", "read"), h.GetAll)
		schedules.POST("", middleware.RequireAdmin(authzService), h.Create)
	}
}
