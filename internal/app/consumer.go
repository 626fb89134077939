package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/lu2aa/attendance-system/internal/attendance"
	"github.com/lu2aa/attendance-system/internal/employee"
	"github.com/lu2aa/attendance-system/internal/evaluation"
	"github.com/lu2aa/attendance-system/internal/events"
	"github.com/lu2aa/attendance-system/internal/messaging/kafka"
	"github.com/lu2aa/attendance-system/internal/messaging/kafka/consumer"
	"github.com/lu2aa/attendance-system/internal/report"
	"github.com/lu2aa/attendance-system/internal/request"
	"github.com/lu2aa/attendance-system/internal/shared/connection"
	"github.com/lu2aa/attendance-system/internal/shared/mailer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer reads report email requests off Kafka and delivers the
// rendered PDFs over SMTP until interrupted.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

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

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	requestRepo := request.NewRepository(gormDB)
	evaluationRepo := evaluation.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	reportService := report.NewService(sqlDB, employeeRepo, attendanceRepo, requestRepo, evaluationRepo, outboxRepo)

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	mail := mailer.New(mailer.Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     smtpPort,
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		UseTLS:   os.Getenv("SMTP_TLS") != "false",
	})

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.ReportEmailRequestedTopic,
		GroupID:        "attendance-system-report-email",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeReportEmailRequested(ctx, reader, reportService, mail, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
