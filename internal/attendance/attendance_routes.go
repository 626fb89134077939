package attendance

import (
	"github.com/lu2aa/attendance-system/internal/authz"
	"github.com/lu2aa/attendance-system/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authzService authz.Service) {
	attendances := r.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", middleware.Authorize(authzService, "attendance", "read"), h.GetAll)
		attendances.POST("", middleware.RequireAdmin(authzService), h.Create)
	}
}
