package importer

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/lu2aa/attendance-system/internal/attendance"
	"github.com/lu2aa/attendance-system/internal/employee"
	"github.com/lu2aa/attendance-system/internal/evaluation"
	importererrors "github.com/lu2aa/attendance-system/internal/importer/errors"
	"github.com/lu2aa/attendance-system/internal/messaging/kafka"
	"github.com/lu2aa/attendance-system/internal/request"
	"github.com/lu2aa/attendance-system/internal/schedule"
	"github.com/lu2aa/attendance-system/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

type fakeEmployeeService struct {
	employee.Service
	bulkUpsertFn func(ctx context.Context, rows []employee.Employee) error
}

func (f *fakeEmployeeService) BulkUpsert(ctx context.Context, rows []employee.Employee) error {
	return f.bulkUpsertFn(ctx, rows)
}

type fakeAttendanceService struct {
	attendance.Service
	bulkInsertFn func(ctx context.Context, rows []attendance.Attendance) error
}

func (f *fakeAttendanceService) BulkInsert(ctx context.Context, rows []attendance.Attendance) error {
	return f.bulkInsertFn(ctx, rows)
}

type fakeRequestService struct {
	request.Service
	bulkInsertFn func(ctx context.Context, rows []request.Request) error
}

func (f *fakeRequestService) BulkInsert(ctx context.Context, rows []request.Request) error {
	return f.bulkInsertFn(ctx, rows)
}

type fakeScheduleService struct {
	schedule.Service
	bulkInsertFn func(ctx context.Context, rows []schedule.ScheduleEntry) error
}

func (f *fakeScheduleService) BulkInsert(ctx context.Context, rows []schedule.ScheduleEntry) error {
	return f.bulkInsertFn(ctx, rows)
}

type fakeEvaluationService struct {
	evaluation.Service
	bulkInsertFn func(ctx context.Context, rows []evaluation.Evaluation) error
}

func (f *fakeEvaluationService) BulkInsert(ctx context.Context, rows []evaluation.Evaluation) error {
	return f.bulkInsertFn(ctx, rows)
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

type importFixture struct {
	service     Service
	resolver    *fakeResolver
	outbox      *fakeOutboxRepo
	employees   [][]employee.Employee
	attendances [][]attendance.Attendance
	requests    [][]request.Request
	schedules   [][]schedule.ScheduleEntry
	evaluations [][]evaluation.Evaluation
}

func newImportFixture() *importFixture {
	f := &importFixture{
		resolver: allowAllResolver(),
		outbox:   &fakeOutboxRepo{},
	}
	f.service = NewService(
		f.resolver,
		&fakeEmployeeService{bulkUpsertFn: func(_ context.Context, rows []employee.Employee) error {
			f.employees = append(f.employees, rows)
			return nil
		}},
		&fakeAttendanceService{bulkInsertFn: func(_ context.Context, rows []attendance.Attendance) error {
			f.attendances = append(f.attendances, rows)
			return nil
		}},
		&fakeRequestService{bulkInsertFn: func(_ context.Context, rows []request.Request) error {
			f.requests = append(f.requests, rows)
			return nil
		}},
		&fakeScheduleService{bulkInsertFn: func(_ context.Context, rows []schedule.ScheduleEntry) error {
			f.schedules = append(f.schedules, rows)
			return nil
		}},
		&fakeEvaluationService{bulkInsertFn: func(_ context.Context, rows []evaluation.Evaluation) error {
			f.evaluations = append(f.evaluations, rows)
			return nil
		}},
		f.outbox,
	)
	return f
}

func xlsxFromRows(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	file := excelize.NewFile()
	sheetName := file.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		assert.NoError(t, err)
		assert.NoError(t, file.SetSheetRow(sheetName, cell, &row))
	}
	var buf bytes.Buffer
	assert.NoError(t, file.Write(&buf))
	return &buf
}

func TestImport_AttendanceCSV(t *testing.T) {
	f := newImportFixture()

	csv := strings.Join([]string{
		"رقم الموظف,تاريخ الحضور,وقت الدخول,وقت الخروج,الحالة,ملاحظات",
		"1001,2026-08-01,08:30,16:30,حاضر,",
		"1002,2026-08-01,,,غائب,بدون إذن",
	}, "\n")

	count, err := f.service.Import(context.Background(), "attendance", "attendance.csv", strings.NewReader(csv), "admin@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	// exactly one insert call carrying the whole batch
	assert.Len(t, f.attendances, 1)
	assert.Len(t, f.attendances[0], 2)

	first := f.attendances[0][0]
	assert.Equal(t, "1001", first.EmployeeNumber)
	assert.Equal(t, "2026-08-01", first.CheckDate.Format("2006-01-02"))
	if assert.NotNil(t, first.CheckInTime) {
		assert.Equal(t, "08:30", *first.CheckInTime)
	}

	second := f.attendances[0][1]
	assert.Nil(t, second.CheckInTime)
	assert.Equal(t, "غائب", second.Status)

	// completion event staged for the worker
	assert.Len(t, f.outbox.created, 1)
	assert.Equal(t, "import_completed", f.outbox.created[0].EventType)
}

func TestImport_DanglingReferenceDiscardsBatch(t *testing.T) {
	f := newImportFixture()
	f.resolver.existsByNumberFn = func(_ context.Context, number string) (bool, error) {
		return number != "9999", nil
	}

	csv := strings.Join([]string{
		"رقم الموظف,تاريخ الحضور,وقت الدخول,وقت الخروج,الحالة,ملاحظات",
		"1001,2026-08-01,08:30,16:30,حاضر,",
		"9999,2026-08-02,08:30,16:30,حاضر,",
	}, "\n")

	count, err := f.service.Import(context.Background(), "attendance", "attendance.csv", strings.NewReader(csv), "admin@example.com")
	assert.Error(t, err)
	assert.Equal(t, apperror.CodeDanglingReference, appCode(t, err))
	assert.Zero(t, count)

	// the whole batch is discarded, nothing was written
	assert.Empty(t, f.attendances)
	assert.Empty(t, f.outbox.created)
}

func TestImport_EmployeesXLSXUpserts(t *testing.T) {
	f := newImportFixture()

	header := make([]any, 0)
	for _, col := range Schemas["employees"].RequiredColumns() {
		header = append(header, col)
	}
	buf := xlsxFromRows(t, [][]any{
		header,
		{"1001", "سارة", "sara@example.com", "مدير"},
	})

	count, err := f.service.Import(context.Background(), "employees", "employees.xlsx", buf, "admin@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Len(t, f.employees, 1)
	assert.Equal(t, "1001", f.employees[0][0].EmployeeNumber)
	assert.Equal(t, "مدير", f.employees[0][0].JobTitle)
}

func TestImport_ExtensionPerDomain(t *testing.T) {
	f := newImportFixture()

	// attendance only accepts csv
	_, err := f.service.Import(context.Background(), "attendance", "attendance.xlsx", strings.NewReader(""), "admin@example.com")
	assert.Equal(t, apperror.CodeUnsupportedFormat, appCode(t, err))

	// employees only accepts workbooks
	_, err = f.service.Import(context.Background(), "employees", "employees.csv", strings.NewReader(""), "admin@example.com")
	assert.Equal(t, apperror.CodeUnsupportedFormat, appCode(t, err))
}

func TestImport_UnknownDomain(t *testing.T) {
	f := newImportFixture()

	_, err := f.service.Import(context.Background(), "payroll", "payroll.xlsx", strings.NewReader(""), "admin@example.com")
	assert.ErrorIs(t, err, importererrors.ErrUnknownDomain)
}

func TestImport_PersistenceFailure(t *testing.T) {
	f := newImportFixture()
	boom := errors.New("connection reset")
	f.service = NewService(
		f.resolver,
		&fakeEmployeeService{bulkUpsertFn: func(context.Context, []employee.Employee) error { return nil }},
		&fakeAttendanceService{bulkInsertFn: func(context.Context, []attendance.Attendance) error { return boom }},
		&fakeRequestService{bulkInsertFn: func(context.Context, []request.Request) error { return nil }},
		&fakeScheduleService{bulkInsertFn: func(context.Context, []schedule.ScheduleEntry) error { return nil }},
		&fakeEvaluationService{bulkInsertFn: func(context.Context, []evaluation.Evaluation) error { return nil }},
		f.outbox,
	)

	csv := strings.Join([]string{
		"رقم الموظف,تاريخ الحضور,وقت الدخول,وقت الخروج,الحالة,ملاحظات",
		"1001,2026-08-01,08:30,16:30,حاضر,",
	}, "\n")

	_, err := f.service.Import(context.Background(), "attendance", "attendance.csv", strings.NewReader(csv), "admin@example.com")
	assert.Equal(t, apperror.CodePersistenceError, appCode(t, err))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, f.outbox.created)
}

func TestImport_RequestsDefaultPendingApproval(t *testing.T) {
	f := newImportFixture()

	header := make([]any, 0)
	for _, col := range Schemas["requests"].RequiredColumns() {
		header = append(header, col)
	}
	buf := xlsxFromRows(t, [][]any{
		header,
		{"1001", "سارة", "sara@example.com", "إجازة", "2026-08-10"},
	})

	count, err := f.service.Import(context.Background(), "requests", "requests.xlsx", buf, "admin@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Len(t, f.requests, 1)
	assert.Equal(t, request.ApprovalPending, f.requests[0][0].Approval)
}
