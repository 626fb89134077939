package employee

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByNumber(ctx context.Context, employeeNumber string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	JobTitleByEmail(ctx context.Context, email string) (string, error)
	ExistsByNumber(ctx context.Context, employeeNumber string) (bool, error)
	ExistsByNumberAndEmail(ctx context.Context, employeeNumber, email string) (bool, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, employeeNumber string) error
	BulkUpsert(ctx context.Context, rows []Employee) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Order("employee_number ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Select("id", "employee_number", "employee_name").
		Order("employee_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByNumber(ctx context.Context, employeeNumber string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		First(&e, "employee_number = ?", employeeNumber).Error
	return &e, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		First(&e, "email = ?", email).Error
	return &e, err
}

func (r *repository) JobTitleByEmail(ctx context.Context, email string) (string, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Select("job_title").
		First(&e, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return e.JobTitle, nil
}

func (r *repository) ExistsByNumber(ctx context.Context, employeeNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_number = ?", employeeNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByNumberAndEmail(ctx context.Context, employeeNumber, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_number = ?", employeeNumber).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, employeeNumber string) error {
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "employee_number = ?", employeeNumber).Error
}

// BulkUpsert writes the whole batch in one statement, updating rows whose
// employee_number already exists. Re-importing the same file therefore
// updates in place instead of duplicating.
func (r *repository) BulkUpsert(ctx context.Context, rows []Employee) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_number"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"employee_name", "email", "job_title", "grade", "work_status",
				"work_days", "part_time", "shift", "is_christian", "nursing_hour",
				"disability", "regular_leave_balance", "casual_leave_balance",
				"absence_days_count", "phone_number", "national_id", "link",
				"nursing_hour_type", "nursing_hour_start", "nursing_hour_end",
				"monthly_evaluation", "training", "notes", "updated_at",
			}),
		}).
		Create(&rows).Error
}
