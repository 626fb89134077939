package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/lu2aa/attendance-system/internal/attendance"
	"github.com/lu2aa/attendance-system/internal/employee"
	"github.com/lu2aa/attendance-system/internal/evaluation"
	"github.com/lu2aa/attendance-system/internal/events"
	"github.com/lu2aa/attendance-system/internal/messaging/kafka"
	reporterrors "github.com/lu2aa/attendance-system/internal/report/errors"
	"github.com/lu2aa/attendance-system/internal/request"
	"github.com/lu2aa/attendance-system/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	MonthlySummary(ctx context.Context, employeeNumber, month string) (MonthlyReport, error)
	RenderPDF(report MonthlyReport) ([]byte, error)
	RequestEmail(ctx context.Context, req EmailReportRequest, requestedBy string) error
}

type service struct {
	db             *sql.DB
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	requestRepo    request.Repository
	evaluationRepo evaluation.Repository
	outboxRepo     kafka.OutboxRepository
	logger         *zap.Logger
}

func NewService(
	db *sql.DB,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	requestRepo request.Repository,
	evaluationRepo evaluation.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		db:             db,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		requestRepo:    requestRepo,
		evaluationRepo: evaluationRepo,
		outboxRepo:     outboxRepo,
		logger:         l,
	}
}

// MonthlySummary aggregates one employee's month. Attendance rows are
// counted as present days; requests are bucketed by approval state; the
// imported evaluation sheet fills in the counters it carries.
func (s *service) MonthlySummary(ctx context.Context, employeeNumber, month string) (MonthlyReport, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return MonthlyReport{}, reporterrors.ErrInvalidMonth
	}
	end := start.AddDate(0, 1, -1)

	emp, err := s.employeeRepo.FindByNumber(ctx, employeeNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MonthlyReport{}, reporterrors.ErrEmployeeNotFound
		}
		s.logger.Error("monthly summary roster lookup failed", zap.Error(err))
		return MonthlyReport{}, err
	}

	report := MonthlyReport{
		EmployeeNumber: emp.EmployeeNumber,
		EmployeeName:   emp.EmployeeName,
		JobTitle:       emp.JobTitle,
		Month:          month,
	}

	movements, err := s.attendanceRepo.FindAll(ctx, attendance.ListFilter{
		EmployeeNumber: employeeNumber,
		From:           start.Format("2006-01-02"),
		To:             end.Format("2006-01-02"),
	})
	if err != nil {
		s.logger.Error("monthly summary attendance lookup failed", zap.Error(err))
		return MonthlyReport{}, err
	}
	report.PresentDays = len(movements)

	requests, err := s.requestRepo.FindByEmployeeNumber(ctx, employeeNumber)
	if err != nil {
		s.logger.Error("monthly summary request lookup failed", zap.Error(err))
		return MonthlyReport{}, err
	}
	for _, r := range requests {
		if r.StartDate.Before(start) || r.StartDate.After(end) {
			continue
		}
		report.RequestsTotal++
		switch r.Approval {
		case request.ApprovalApproved:
			report.RequestsApproved++
		case request.ApprovalRejected:
			report.RequestsRejected++
		default:
			report.RequestsPending++
		}
	}

	evaluations, err := s.evaluationRepo.FindAll(ctx, evaluation.ListFilter{EmployeeNumber: employeeNumber})
	if err != nil {
		s.logger.Error("monthly summary evaluation lookup failed", zap.Error(err))
		return MonthlyReport{}, err
	}
	if len(evaluations) > 0 {
		latest := evaluations[0]
		report.WorkHours = latest.WorkHours
		report.RegularLeave = latest.RegularLeave
		report.CasualLeave = latest.CasualLeave
		report.LateMinutes = latest.LateMinutes
		report.MonthlyEvaluation = latest.MonthlyEvaluation
	}

	return report, nil
}

func (s *service) RenderPDF(report MonthlyReport) ([]byte, error) {
	return renderPDF(report)
}

// RequestEmail stages the delivery as an outbox event; the consumer binary
// renders the PDF and sends the mail.
func (s *service) RequestEmail(ctx context.Context, req EmailReportRequest, requestedBy string) error {
	// Validates the month and the employee before anything is staged.
	if _, err := s.MonthlySummary(ctx, req.EmployeeNumber, req.Month); err != nil {
		return err
	}

	event := events.ReportEmailRequestedEvent{
		EventType:      "report_email_requested",
		EmployeeNumber: req.EmployeeNumber,
		Month:          req.Month,
		Recipient:      req.Recipient,
		RequestedBy:    requestedBy,
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("request report email begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "report",
		AggregateID:   req.EmployeeNumber,
		EventType:     "report_email_requested",
		Topic:         events.ReportEmailRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("stage report email event failed", zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("request report email commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("report email requested",
		zap.String("employee_number", req.EmployeeNumber),
		zap.String("month", req.Month),
		zap.String("recipient", req.Recipient),
	)
	return nil
}
