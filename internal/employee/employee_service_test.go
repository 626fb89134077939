package employee

import (
	"context"
	"database/sql"
	"testing"

	employeeerrors "github.com/lu2aa/attendance-system/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                 func(tx *sql.Tx) Repository
	createFn                 func(ctx context.Context, e *Employee) error
	findAllFn                func(ctx context.Context) ([]Employee, error)
	findOptionsFn            func(ctx context.Context) ([]Employee, error)
	findByNumberFn           func(ctx context.Context, employeeNumber string) (*Employee, error)
	findByEmailFn            func(ctx context.Context, email string) (*Employee, error)
	jobTitleByEmailFn        func(ctx context.Context, email string) (string, error)
	existsByNumberFn         func(ctx context.Context, employeeNumber string) (bool, error)
	existsByNumberAndEmailFn func(ctx context.Context, employeeNumber, email string) (bool, error)
	updateFn                 func(ctx context.Context, e *Employee) error
	deleteFn                 func(ctx context.Context, employeeNumber string) error
	bulkUpsertFn             func(ctx context.Context, rows []Employee) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                 { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, e *Employee) error { return f.createFn(ctx, e) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employee, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindOptions(ctx context.Context) ([]Employee, error) {
	return f.findOptionsFn(ctx)
}
func (f *fakeRepo) FindByNumber(ctx context.Context, employeeNumber string) (*Employee, error) {
	return f.findByNumberFn(ctx, employeeNumber)
}
func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeRepo) JobTitleByEmail(ctx context.Context, email string) (string, error) {
	return f.jobTitleByEmailFn(ctx, email)
}
func (f *fakeRepo) ExistsByNumber(ctx context.Context, employeeNumber string) (bool, error) {
	return f.existsByNumberFn(ctx, employeeNumber)
}
func (f *fakeRepo) ExistsByNumberAndEmail(ctx context.Context, employeeNumber, email string) (bool, error) {
	return f.existsByNumberAndEmailFn(ctx, employeeNumber, email)
}
func (f *fakeRepo) Update(ctx context.Context, e *Employee) error { return f.updateFn(ctx, e) }
func (f *fakeRepo) Delete(ctx context.Context, employeeNumber string) error {
	return f.deleteFn(ctx, employeeNumber)
}
func (f *fakeRepo) BulkUpsert(ctx context.Context, rows []Employee) error {
	return f.bulkUpsertFn(ctx, rows)
}

func TestService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Employee
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(_ context.Context, e *Employee) error { saved = *e; return nil }

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		EmployeeNumber: " 1001 ",
		EmployeeName:   "سارة",
		Email:          "Sara@Example.com",
		JobTitle:       "أخصائي",
	})
	assert.NoError(t, err)
	assert.Equal(t, "1001", resp.EmployeeNumber)

	// number trimmed, email lowercased before hitting the database
	assert.Equal(t, "1001", saved.EmployeeNumber)
	assert.Equal(t, "sara@example.com", saved.Email)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_DuplicateNumber(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(context.Context, *Employee) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_employees_employee_number"}
	}

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		EmployeeNumber: "1001",
		EmployeeName:   "سارة",
		Email:          "sara@example.com",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNumberAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetByNumber_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{findByNumberFn: func(context.Context, string) (*Employee, error) {
		return nil, gorm.ErrRecordNotFound
	}}

	svc := NewService(db, repo, nil)
	_, err := svc.GetByNumber(context.Background(), "9999")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_GetByEmail_Normalizes(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{findByEmailFn: func(_ context.Context, email string) (*Employee, error) {
		assert.Equal(t, "sara@example.com", email)
		return &Employee{EmployeeNumber: "1001", Email: email}, nil
	}}

	svc := NewService(db, repo, nil)
	resp, err := svc.GetByEmail(context.Background(), " Sara@Example.com ")
	assert.NoError(t, err)
	assert.Equal(t, "1001", resp.EmployeeNumber)
}

func TestService_GetOptions_WithoutCache(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	calls := 0
	repo := &fakeRepo{findOptionsFn: func(context.Context) ([]Employee, error) {
		calls++
		return []Employee{
			{EmployeeNumber: "1001", EmployeeName: "أحمد"},
			{EmployeeNumber: "1002", EmployeeName: "سارة"},
		}, nil
	}}

	svc := NewService(db, repo, nil)
	opts, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Len(t, opts, 2)
	assert.Equal(t, "أحمد", opts[0].EmployeeName)
	assert.Equal(t, 1, calls)
}

func TestService_BulkUpsert(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	var got []Employee
	repo := &fakeRepo{bulkUpsertFn: func(_ context.Context, rows []Employee) error {
		got = rows
		return nil
	}}

	svc := NewService(db, repo, nil)
	err := svc.BulkUpsert(context.Background(), []Employee{
		{EmployeeNumber: "1001"},
		{EmployeeNumber: "1002"},
	})
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	deleted := ""
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.deleteFn = func(_ context.Context, employeeNumber string) error {
		deleted = employeeNumber
		return nil
	}

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	err := svc.Delete(context.Background(), "1001")
	assert.NoError(t, err)
	assert.Equal(t, "1001", deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
