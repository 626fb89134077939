package evaluation

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lu2aa/attendance-system/internal/employee"
	evaluationerrors "github.com/lu2aa/attendance-system/internal/evaluation/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn     func(tx *sql.Tx) Repository
	createFn     func(ctx context.Context, e *Evaluation) error
	findAllFn    func(ctx context.Context, filter ListFilter) ([]Evaluation, error)
	bulkInsertFn func(ctx context.Context, rows []Evaluation) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                    { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, e *Evaluation) error { return f.createFn(ctx, e) }
func (f *fakeRepo) FindAll(ctx context.Context, filter ListFilter) ([]Evaluation, error) {
	return f.findAllFn(ctx, filter)
}
func (f *fakeRepo) BulkInsert(ctx context.Context, rows []Evaluation) error {
	return f.bulkInsertFn(ctx, rows)
}

type fakeEmployeeRepo struct {
	employee.Repository
	existsByNumberFn func(ctx context.Context, number string) (bool, error)
}

func (f *fakeEmployeeRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return f.existsByNumberFn(ctx, number)
}

func intPtr(v int) *int { return &v }

func TestService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Evaluation
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(_ context.Context, e *Evaluation) error { saved = *e; return nil }

	empRepo := &fakeEmployeeRepo{existsByNumberFn: func(_ context.Context, number string) (bool, error) {
		assert.Equal(t, "1001", number)
		return true, nil
	}}

	svc := NewService(db, repo, empRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateEvaluationRequest{
		EmployeeNumber:    " 1001 ",
		EmployeeName:      "سارة",
		MonthlyEvaluation: intPtr(92),
	})
	assert.NoError(t, err)
	assert.Equal(t, "1001", resp.EmployeeNumber)
	assert.Equal(t, "1001", saved.EmployeeNumber)
	if assert.NotNil(t, saved.MonthlyEvaluation) {
		assert.Equal(t, 92, *saved.MonthlyEvaluation)
	}
	assert.Nil(t, saved.WorkHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_UnknownEmployee(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	empRepo := &fakeEmployeeRepo{existsByNumberFn: func(context.Context, string) (bool, error) {
		return false, nil
	}}

	svc := NewService(db, &fakeRepo{}, empRepo)
	_, err := svc.Create(context.Background(), CreateEvaluationRequest{
		EmployeeNumber: "9999",
		EmployeeName:   "مجهول",
	})
	assert.ErrorIs(t, err, evaluationerrors.ErrEmployeeNotFound)
}

func TestService_GetAll_ScopesNonAdminToOwnNumber(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	var gotFilter ListFilter
	repo := &fakeRepo{findAllFn: func(_ context.Context, filter ListFilter) ([]Evaluation, error) {
		gotFilter = filter
		return []Evaluation{{ID: uuid.New(), EmployeeNumber: filter.EmployeeNumber}}, nil
	}}

	svc := NewService(db, repo, &fakeEmployeeRepo{})

	rows, err := svc.GetAll(context.Background(), ListFilter{EmployeeNumber: "1002"}, "1001", false)
	assert.NoError(t, err)
	assert.Equal(t, "1001", gotFilter.EmployeeNumber)
	assert.Len(t, rows, 1)

	_, err = svc.GetAll(context.Background(), ListFilter{EmployeeNumber: "1002"}, "1001", true)
	assert.NoError(t, err)
	assert.Equal(t, "1002", gotFilter.EmployeeNumber)
}

func TestService_BulkInsert(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	var got []Evaluation
	repo := &fakeRepo{bulkInsertFn: func(_ context.Context, rows []Evaluation) error {
		got = rows
		return nil
	}}

	svc := NewService(db, repo, &fakeEmployeeRepo{})
	err := svc.BulkInsert(context.Background(), []Evaluation{
		{ID: uuid.New(), EmployeeNumber: "1001"},
		{ID: uuid.New(), EmployeeNumber: "1002"},
	})
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
