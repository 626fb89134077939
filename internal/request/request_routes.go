package request

import (
	"github.com/lu2aa/attendance-system/internal/authz"
	"github.com/lu2aa/attendance-system/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authzService authz.Service) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("", middleware.Authorize(authzService, "request", "create"), h.Submit)
		requests.GET("/mine", middleware.Authorize(authzService, "request", "read"), h.GetMine)

		requests.GET("", middleware.RequireAdmin(authzService), h.GetAll)
		requests.POST("/:id/approve", middleware.RequireAdmin(authzService), h.Approve)
		requests.POST("/:id/reject", middleware.RequireAdmin(authzService), h.Reject)
	}
}
