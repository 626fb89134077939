package schedule

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lu2aa/attendance-system/internal/employee"
	scheduleerrors "github.com/lu2aa/attendance-system/internal/schedule/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn     func(tx *sql.Tx) Repository
	createFn     func(ctx context.Context, entry *ScheduleEntry) error
	findAllFn    func(ctx context.Context, filter ListFilter) ([]ScheduleEntry, error)
	bulkInsertFn func(ctx context.Context, rows []ScheduleEntry) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                      { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, e *ScheduleEntry) error { return f.createFn(ctx, e) }
func (f *fakeRepo) FindAll(ctx context.Context, filter ListFilter) ([]ScheduleEntry, error) {
	return f.findAllFn(ctx, filter)
}
func (f *fakeRepo) BulkInsert(ctx context.Context, rows []ScheduleEntry) error {
	return f.bulkInsertFn(ctx, rows)
}

type fakeEmployeeRepo struct {
	employee.Repository
	existsByNumberFn func(ctx context.Context, number string) (bool, error)
}

func (f *fakeEmployeeRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return f.existsByNumberFn(ctx, number)
}

func strPtr(v string) *string { return &v }

func TestService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved ScheduleEntry
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(_ context.Context, e *ScheduleEntry) error { saved = *e; return nil }

	empRepo := &fakeEmployeeRepo{existsByNumberFn: func(context.Context, string) (bool, error) {
		return true, nil
	}}

	svc := NewService(db, repo, empRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateScheduleRequest{
		Day:              "السبت",
		Date:             "2026-08-01",
		EveningEmployee1: strPtr("1001"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "2026-08-01", resp.Date)
	if assert.NotNil(t, saved.EveningEmployee1) {
		assert.Equal(t, "1001", *saved.EveningEmployee1)
	}
	assert.Nil(t, saved.NightEmployee1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_UnknownSlotEmployee(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	empRepo := &fakeEmployeeRepo{existsByNumberFn: func(_ context.Context, number string) (bool, error) {
		return number != "9999", nil
	}}

	svc := NewService(db, repo, empRepo)
	_, err := svc.Create(context.Background(), CreateScheduleRequest{
		Day:            "السبت",
		Date:           "2026-08-01",
		NightEmployee1: strPtr("9999"),
	})
	assert.ErrorIs(t, err, scheduleerrors.ErrEmployeeNotFound)
}

func TestService_Create_InvalidDate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeEmployeeRepo{})
	_, err := svc.Create(context.Background(), CreateScheduleRequest{Day: "السبت", Date: "August 1"})
	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidDate)
}

func TestService_GetAll_PassesRangeFilter(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	var gotFilter ListFilter
	repo := &fakeRepo{}
	repo.findAllFn = func(_ context.Context, filter ListFilter) ([]ScheduleEntry, error) {
		gotFilter = filter
		return nil, nil
	}

	svc := NewService(db, repo, &fakeEmployeeRepo{})
	_, err := svc.GetAll(context.Background(), ListFilter{From: "2026-08-01", To: "2026-08-31"})
	assert.NoError(t, err)
	assert.Equal(t, "2026-08-01", gotFilter.From)
	assert.Equal(t, "2026-08-31", gotFilter.To)
}
