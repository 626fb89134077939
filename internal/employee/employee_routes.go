package employee

import (
	"github.com/lu2aa/attendance-system/internal/authz"
	"github.com/lu2aa/attendance-system/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authzService authz.Service) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/me", h.GetMe)
		employees.GET("/options", h.GetOptions)

		employees.GET("", middleware.RequireAdmin(authzService), h.GetAll)
		employees.POST("", middleware.RequireAdmin(authzService), h.Create)
		employees.GET("/:number", middleware.RequireAdmin(authzService), h.GetByNumber)
		employees.PUT("/:number", middleware.RequireAdmin(authzService), h.Update)
		employees.DELETE("/:number", middleware.RequireAdmin(authzService), h.Delete)
	}
}
