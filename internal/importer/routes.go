package importer

import (
	"github.com/lu2aa/attendance-system/internal/authz"
	"github.com/lu2aa/attendance-system/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authzService authz.Service, rdb *redis.Client) {
	imports := r.Group("/imports")
	imports.Use(middleware.AuthMiddleware())
	{
		imports.GET("/templates/:domain", middleware.RequireAdmin(authzService), h.DownloadTemplate)
		imports.POST("/:domain",
			middleware.RequireAdmin(authzService),
			middleware.Idempotency(rdb),
			h.Upload,
		)
	}
}
