package report

import (
	"github.com/lu2aa/attendance-system/internal/authz"
	"github.com/lu2aa/attendance-system/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authzService authz.Service) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/monthly", middleware.Authorize(authzService, "report", "read"), h.GetMonthly)
		reports.GET("/monthly/pdf", middleware.Authorize(authzService, "report", "read"), h.DownloadMonthlyPDF)
		reports.POST("/email", middleware.RequireAdmin(authzService), h.RequestEmail)
	}
}
