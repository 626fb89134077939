package importer

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/lu2aa/attendance-system/internal/attendance"
	"github.com/lu2aa/attendance-system/internal/employee"
	"github.com/lu2aa/attendance-system/internal/evaluation"
	"github.com/lu2aa/attendance-system/internal/events"
	importererrors "github.com/lu2aa/attendance-system/internal/importer/errors"
	"github.com/lu2aa/attendance-system/internal/messaging/kafka"
	"github.com/lu2aa/attendance-system/internal/request"
	"github.com/lu2aa/attendance-system/internal/schedule"
	"github.com/lu2aa/attendance-system/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock
type Service interface {
	Import(ctx context.Context, domain, filename string, file io.Reader, uploadedBy string) (int, error)
}

type service struct {
	resolver          Resolver
	employeeService   employee.Service
	attendanceService attendance.Service
	requestService    request.Service
	scheduleService   schedule.Service
	evaluationService evaluation.Service
	outboxRepo        kafka.OutboxRepository
	logger            *zap.Logger
}

func NewService(
	resolver Resolver,
	employeeService employee.Service,
	attendanceService attendance.Service,
	requestService request.Service,
	scheduleService schedule.Service,
	evaluationService evaluation.Service,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("importer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("importer.service")
	}
	return &service{
		resolver:          resolver,
		employeeService:   employeeService,
		attendanceService: attendanceService,
		requestService:    requestService,
		scheduleService:   scheduleService,
		evaluationService: evaluationService,
		outboxRepo:        outboxRepo,
		logger:            l,
	}
}

// Import runs the whole pipeline for one uploaded file: parse, validate
// against the domain schema, then write the batch with a single insert.
// Any failure discards the entire batch.
func (s *service) Import(ctx context.Context, domain, filename string, file io.Reader, uploadedBy string) (int, error) {
	schema, ok := Schemas[domain]
	if !ok {
		return 0, importererrors.ErrUnknownDomain
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !schema.AcceptsExtension(ext) {
		return 0, importererrors.UnsupportedFormat(ext)
	}

	s.logger.Debug("import requested",
		zap.String("domain", domain),
		zap.String("filename", filename),
	)

	sheet, err := Parse(filename, file)
	if err != nil {
		return 0, err
	}

	records, err := ValidateRows(ctx, schema, sheet, s.resolver)
	if err != nil {
		s.logger.Warn("import validation failed",
			zap.String("domain", domain),
			zap.Error(err),
		)
		return 0, err
	}

	if err := s.persist(ctx, domain, records); err != nil {
		s.logger.Error("import persist failed",
			zap.String("domain", domain),
			zap.Int("rows", len(records)),
			zap.Error(err),
		)
		return 0, importererrors.PersistenceError(err)
	}

	s.recordCompletion(ctx, domain, len(records), uploadedBy)

	s.logger.Info("import success",
		zap.String("domain", domain),
		zap.Int("rows", len(records)),
	)
	return len(records), nil
}

// persist issues exactly one write call per batch; the store's own
// atomicity guarantees no partial batches.
func (s *service) persist(ctx context.Context, domain string, records []Record) error {
	switch domain {
	case "employees":
		return s.employeeService.BulkUpsert(ctx, buildEmployees(records))
	case "attendance":
		return s.attendanceService.BulkInsert(ctx, buildAttendance(records))
	case "requests":
		return s.requestService.BulkInsert(ctx, buildRequests(records))
	case "schedule":
		return s.scheduleService.BulkInsert(ctx, buildSchedule(records))
	case "evaluation":
		return s.evaluationService.BulkInsert(ctx, buildEvaluations(records))
	default:
		return importererrors.ErrUnknownDomain
	}
}

// recordCompletion stages an ImportCompleted event; a failure here never
// fails the import itself.
func (s *service) recordCompletion(ctx context.Context, domain string, rows int, uploadedBy string) {
	event := events.ImportCompletedEvent{
		EventType:  "import_completed",
		Domain:     domain,
		RowCount:   rows,
		UploadedBy: uploadedBy,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal import completed event failed", zap.Error(err))
		return
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "import",
		AggregateID:   domain,
		EventType:     "import_completed",
		Topic:         events.ImportCompletedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outboxRepo.Create(ctx, outboxEvent); err != nil {
		s.logger.Error("stage import completed event failed", zap.Error(err))
	}
}

func buildEmployees(records []Record) []employee.Employee {
	rows := make([]employee.Employee, len(records))
	for i, r := range records {
		rows[i] = employee.Employee{
			ID:                  uuid.New(),
			EmployeeNumber:      r.Text("employee_number"),
			EmployeeName:        r.Text("employee_name"),
			Email:               r.Text("email"),
			JobTitle:            r.Text("job_title"),
			Grade:               r.Text("grade"),
			WorkStatus:          r.Text("work_status"),
			WorkDays:            r.Int("work_days"),
			PartTime:            r.Bool("part_time"),
			Shift:               r.Text("shift"),
			IsChristian:         r.Bool("is_christian"),
			NursingHour:         r.Bool("nursing_hour"),
			Disability:          r.Bool("disability"),
			RegularLeaveBalance: r.Int("regular_leave_balance"),
			CasualLeaveBalance:  r.Int("casual_leave_balance"),
			AbsenceDaysCount:    r.Int("absence_days_count"),
			PhoneNumber:         r.Text("phone_number"),
			NationalID:          r.Text("national_id"),
			Link:                r.Text("link"),
			NursingHourType:     r.Text("nursing_hour_type"),
			NursingHourStart:    r.Text("nursing_hour_start"),
			NursingHourEnd:      r.Text("nursing_hour_end"),
			MonthlyEvaluation:   r.Int("monthly_evaluation"),
			Training:            r.Text("training"),
			Notes:               r.Text("notes"),
		}
	}
	return rows
}

func buildAttendance(records []Record) []attendance.Attendance {
	rows := make([]attendance.Attendance, len(records))
	for i, r := range records {
		rows[i] = attendance.Attendance{
			ID:             uuid.New(),
			EmployeeNumber: r.Text("employee_number"),
			CheckDate:      mustDate(r.Text("check_date")),
			CheckInTime:    r.OptText("check_in_time"),
			CheckOutTime:   r.OptText("check_out_time"),
			Status:         r.Text("status"),
			Notes:          r.Text("notes"),
		}
	}
	return rows
}

func buildRequests(records []Record) []request.Request {
	rows := make([]request.Request, len(records))
	for i, r := range records {
		approval := r.Text("approval")
		if approval == "" {
			approval = request.ApprovalPending
		}
		rows[i] = request.Request{
			ID:             uuid.New(),
			EmployeeNumber: r.Text("employee_number"),
			EmployeeName:   r.Text("employee_name"),
			Email:          r.Text("email"),
			RequestType:    r.Text("request_type"),
			StartDate:      mustDate(r.Text("start_date")),
			EndDate:        optDate(r.Text("end_date")),
			Allowance:      r.Text("allowance"),
			Notes:          r.Text("notes"),
			BackToWorkDate: optDate(r.Text("back_to_work_date")),
			Approval:       approval,
			Reply:          r.Text("reply"),
		}
	}
	return rows
}

func buildSchedule(records []Record) []schedule.ScheduleEntry {
	rows := make([]schedule.ScheduleEntry, len(records))
	for i, r := range records {
		rows[i] = schedule.ScheduleEntry{
			ID:               uuid.New(),
			Day:              r.Text("day"),
			Date:             mustDate(r.Text("date")),
			EveningEmployee1: r.OptText("evening_employee_1"),
			EveningEmployee2: r.OptText("evening_employee_2"),
			NightEmployee1:   r.OptText("night_employee_1"),
		}
	}
	return rows
}

func buildEvaluations(records []Record) []evaluation.Evaluation {
	rows := make([]evaluation.Evaluation, len(records))
	for i, r := range records {
		rows[i] = evaluation.Evaluation{
			ID:                uuid.New(),
			EmployeeNumber:    r.Text("employee_number"),
			EmployeeName:      r.Text("employee_name"),
			JobTitle:          r.Text("job_title"),
			PresentDays:       r.Int("present_days"),
			WorkHours:         r.Int("work_hours"),
			RegularLeave:      r.Int("regular_leave"),
			CasualLeave:       r.Int("casual_leave"),
			LateMinutes:       r.Int("late_minutes"),
			MonthlyEvaluation: r.Int("monthly_evaluation"),
			Timestamp:         r.OptText("timestamp"),
		}
	}
	return rows
}

// mustDate is only called on fields the format check already validated;
// a parse failure here is a bug in that check, never bad user input.
func mustDate(v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic("importer: unvalidated date reached the row builder: " + v)
	}
	return t
}

func optDate(v string) *time.Time {
	if v == "" {
		return nil
	}
	t := mustDate(v)
	return &t
}
