package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/lu2aa/attendance-system/internal/attendance"
	"github.com/lu2aa/attendance-system/internal/employee"
	"github.com/lu2aa/attendance-system/internal/evaluation"
	"github.com/lu2aa/attendance-system/internal/events"
	"github.com/lu2aa/attendance-system/internal/messaging/kafka"
	reporterrors "github.com/lu2aa/attendance-system/internal/report/errors"
	"github.com/lu2aa/attendance-system/internal/request"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	employee.Repository
	findByNumberFn func(ctx context.Context, employeeNumber string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepo) FindByNumber(ctx context.Context, employeeNumber string) (*employee.Employee, error) {
	return f.findByNumberFn(ctx, employeeNumber)
}

type fakeAttendanceRepo struct {
	attendance.Repository
	findAllFn func(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceRepo) FindAll(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	return f.findAllFn(ctx, filter)
}

type fakeRequestRepo struct {
	request.Repository
	findByEmployeeNumberFn func(ctx context.Context, employeeNumber string) ([]request.Request, error)
}

func (f *fakeRequestRepo) FindByEmployeeNumber(ctx context.Context, employeeNumber string) ([]request.Request, error) {
	return f.findByEmployeeNumberFn(ctx, employeeNumber)
}

type fakeEvaluationRepo struct {
	evaluation.Repository
	findAllFn func(ctx context.Context, filter evaluation.ListFilter) ([]evaluation.Evaluation, error)
}

func (f *fakeEvaluationRepo) FindAll(ctx context.Context, filter evaluation.ListFilter) ([]evaluation.Evaluation, error) {
	return f.findAllFn(ctx, filter)
}

type fakeOutboxRepo struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, e kafka.OutboxEvent) error {
	f.created = append(f.created, e)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func intPtr(v int) *int { return &v }

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	assert.NoError(t, err)
	return d
}

type reportFixture struct {
	service Service
	outbox  *fakeOutboxRepo
	mock    sqlmock.Sqlmock
	db      *sql.DB
}

func newReportFixture(t *testing.T) *reportFixture {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &reportFixture{outbox: &fakeOutboxRepo{}, mock: mock, db: db}

	empRepo := &fakeEmployeeRepo{findByNumberFn: func(_ context.Context, number string) (*employee.Employee, error) {
		if number != "1001" {
			return nil, gorm.ErrRecordNotFound
		}
		return &employee.Employee{
			EmployeeNumber: "1001",
			EmployeeName:   "سارة",
			JobTitle:       "أخصائي",
		}, nil
	}}

	attRepo := &fakeAttendanceRepo{findAllFn: func(_ context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
		assert.Equal(t, "1001", filter.EmployeeNumber)
		assert.Equal(t, "2026-08-01", filter.From)
		assert.Equal(t, "2026-08-31", filter.To)
		return make([]attendance.Attendance, 20), nil
	}}

	reqRepo := &fakeRequestRepo{findByEmployeeNumberFn: func(context.Context, string) ([]request.Request, error) {
		return []request.Request{
			{StartDate: date(t, "2026-08-05"), Approval: request.ApprovalApproved},
			{StartDate: date(t, "2026-08-12"), Approval: request.ApprovalPending},
			{StartDate: date(t, "2026-08-20"), Approval: request.ApprovalRejected},
			// outside the month, must not be counted
			{StartDate: date(t, "2026-07-30"), Approval: request.ApprovalApproved},
			{StartDate: date(t, "2026-09-01"), Approval: request.ApprovalApproved},
		}, nil
	}}

	evalRepo := &fakeEvaluationRepo{findAllFn: func(_ context.Context, filter evaluation.ListFilter) ([]evaluation.Evaluation, error) {
		assert.Equal(t, "1001", filter.EmployeeNumber)
		return []evaluation.Evaluation{{
			EmployeeNumber:    "1001",
			WorkHours:         intPtr(160),
			LateMinutes:       intPtr(45),
			MonthlyEvaluation: intPtr(92),
		}}, nil
	}}

	f.service = NewService(db, empRepo, attRepo, reqRepo, evalRepo, f.outbox)
	return f
}

func TestService_MonthlySummary(t *testing.T) {
	f := newReportFixture(t)

	report, err := f.service.MonthlySummary(context.Background(), "1001", "2026-08")
	assert.NoError(t, err)

	assert.Equal(t, "سارة", report.EmployeeName)
	assert.Equal(t, "أخصائي", report.JobTitle)
	assert.Equal(t, 20, report.PresentDays)

	// only the three requests starting inside 2026-08 count
	assert.Equal(t, 3, report.RequestsTotal)
	assert.Equal(t, 1, report.RequestsApproved)
	assert.Equal(t, 1, report.RequestsPending)
	assert.Equal(t, 1, report.RequestsRejected)

	if assert.NotNil(t, report.WorkHours) {
		assert.Equal(t, 160, *report.WorkHours)
	}
	if assert.NotNil(t, report.MonthlyEvaluation) {
		assert.Equal(t, 92, *report.MonthlyEvaluation)
	}
}

func TestService_MonthlySummary_InvalidMonth(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.service.MonthlySummary(context.Background(), "1001", "08-2026")
	assert.ErrorIs(t, err, reporterrors.ErrInvalidMonth)
}

func TestService_MonthlySummary_UnknownEmployee(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.service.MonthlySummary(context.Background(), "9999", "2026-08")
	assert.ErrorIs(t, err, reporterrors.ErrEmployeeNotFound)
}

func TestService_RenderPDF(t *testing.T) {
	f := newReportFixture(t)

	report, err := f.service.MonthlySummary(context.Background(), "1001", "2026-08")
	assert.NoError(t, err)

	pdf, err := f.service.RenderPDF(report)
	assert.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestService_RequestEmail_StagesOutboxEvent(t *testing.T) {
	f := newReportFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	err := f.service.RequestEmail(context.Background(), EmailReportRequest{
		EmployeeNumber: "1001",
		Month:          "2026-08",
		Recipient:      "manager@example.com",
	}, "admin@example.com")
	assert.NoError(t, err)
	assert.NoError(t, f.mock.ExpectationsWereMet())

	if assert.Len(t, f.outbox.created, 1) {
		staged := f.outbox.created[0]
		assert.Equal(t, events.ReportEmailRequestedTopic, staged.Topic)
		assert.Equal(t, "report_email_requested", staged.EventType)
		assert.Equal(t, kafka.OutboxStatusPending, staged.Status)

		var event events.ReportEmailRequestedEvent
		assert.NoError(t, json.Unmarshal(staged.Payload, &event))
		assert.Equal(t, "manager@example.com", event.Recipient)
		assert.Equal(t, "admin@example.com", event.RequestedBy)
	}
}

func TestService_RequestEmail_RejectsUnknownEmployee(t *testing.T) {
	f := newReportFixture(t)

	err := f.service.RequestEmail(context.Background(), EmailReportRequest{
		EmployeeNumber: "9999",
		Month:          "2026-08",
		Recipient:      "manager@example.com",
	}, "admin@example.com")
	assert.ErrorIs(t, err, reporterrors.ErrEmployeeNotFound)
	assert.Empty(t, f.outbox.created)
}
