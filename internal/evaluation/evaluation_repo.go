package evaluation

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=evaluation_repo.go -destination=mock/evaluation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Evaluation) error
	FindAll(ctx context.Context, filter ListFilter) ([]Evaluation, error)
	BulkInsert(ctx context.Context, rows []Evaluation) error
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

func (r *repository) Create(ctx context.Context, e *Evaluation) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Evaluation, error) {
	q := r.db.WithContext(ctx).Model(&Evaluation{})
	if filter.EmployeeNumber != "" {
		q = q.Where("employee_number = ?", filter.EmployeeNumber)
	}

	var rows []Evaluation
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) BulkInsert(ctx context.Context, rows []Evaluation) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
