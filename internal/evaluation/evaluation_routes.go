package evaluation

import (
	"github.com/lu2aa/attendance-system/internal/authz"
	"github.com/lu2aa/attendance-system/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authzService authz.Service) {
	evaluations := r.Group("/evaluations")
	evaluations.Use(middleware.AuthMiddleware())
	{
		evaluations.GET("", middleware.Authorize(authzService, "evaluation", "read"), h.GetAll)
		evaluations.POST("", middleware.RequireAdmin(authzService), h.Create)
	}
}
