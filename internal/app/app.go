package app

import (
	"os"

	"github.com/lu2aa/attendance-system/internal/attendance"
	"github.com/lu2aa/attendance-system/internal/auth"
	"github.com/lu2aa/attendance-system/internal/employee"
	"github.com/lu2aa/attendance-system/internal/evaluation"
	"github.com/lu2aa/attendance-system/internal/request"
	"github.com/lu2aa/attendance-system/internal/schedule"
	"github.com/lu2aa/attendance-system/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure and wires every module onto the
// router. Migrations only run when DB_AUTOMIGRATE is set; production
// schemas are managed outside the binary.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if os.Getenv("DB_AUTOMIGRATE") == "true" {
		if err := autoMigrate(gormDB); err != nil {
			return err
		}
		zap.L().Info("database migration complete")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	return registerModules(router, sqlDB, gormDB, redisClient)
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employee.Employee{},
		&auth.Profile{},
		&attendance.Attendance{},
		&request.Request{},
		&schedule.ScheduleEntry{},
		&evaluation.Evaluation{},
	)
}
