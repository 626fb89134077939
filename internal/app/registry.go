package app

import (
	"database/sql"
	"os"

	"github.com/lu2aa/attendance-system/internal/attendance"
	"github.com/lu2aa/attendance-system/internal/auth"
	"github.com/lu2aa/attendance-system/internal/authz"
	"github.com/lu2aa/attendance-system/internal/employee"
	"github.com/lu2aa/attendance-system/internal/evaluation"
	"github.com/lu2aa/attendance-system/internal/importer"
	"github.com/lu2aa/attendance-system/internal/messaging/kafka"
	"github.com/lu2aa/attendance-system/internal/middleware"
	"github.com/lu2aa/attendance-system/internal/report"
	"github.com/lu2aa/attendance-system/internal/request"
	"github.com/lu2aa/attendance-system/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	requestRepo := request.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	evaluationRepo := evaluation.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Authorization Core ---
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}
	authzService := authz.NewService(os.Getenv("ADMIN_EMAIL"), employeeRepo, authRepo, enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo, authzService)
	employeeService := employee.NewService(db, employeeRepo, rdb)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo)
	requestService := request.NewService(db, requestRepo, employeeRepo)
	scheduleService := schedule.NewService(db, scheduleRepo, employeeRepo)
	evaluationService := evaluation.NewService(db, evaluationRepo, employeeRepo)
	importerService := importer.NewService(
		employeeRepo,
		employeeService,
		attendanceService,
		requestService,
		scheduleService,
		evaluationService,
		outboxRepo,
	)
	reportService := report.NewService(db, employeeRepo, attendanceRepo, requestRepo, evaluationRepo, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	requestHandler := request.NewHandler(requestService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	evaluationHandler := evaluation.NewHandler(evaluationService)
	importerHandler := importer.NewHandler(importerService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, authzService)
		attendance.RegisterRoutes(api, attendanceHandler, authzService)
		request.RegisterRoutes(api, requestHandler, authzService)
		schedule.RegisterRoutes(api, scheduleHandler, authzService)
		evaluation.RegisterRoutes(api, evaluationHandler, authzService)
		importer.RegisterRoutes(api, importerHandler, authzService, rdb)
		report.RegisterRoutes(api, reportHandler, authzService)
	}

	return nil
}
