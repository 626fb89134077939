package request

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, req *Request) error
	FindAll(ctx context.Context) ([]Request, error)
	FindByEmail(ctx context.Context, email string) ([]Request, error)
	FindByEmployeeNumber(ctx context.Context, employeeNumber string) ([]Request, error)
	FindByID(ctx context.Context, id string) (*Request, error)
	UpdateDecision(ctx context.Context, id, approval, reply string) error
	BulkInsert(ctx context.Context, rows []Request) error
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

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Request, error) {
	var rows []Request
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) ([]Request, error) {
	var rows []Request
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeNumber(ctx context.Context, employeeNumber string) ([]Request, error) {
	var rows []Request
	err := r.db.WithContext(ctx).
		Where("employee_number = ?", employeeNumber).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	return &req, err
}

// UpdateDecision only ever touches the approval fields; the employee and
// date columns stay as submitted.
func (r *repository) UpdateDecision(ctx context.Context, id, approval, reply string) error {
	return r.db.WithContext(ctx).
		Model(&Request{}).
		Where("id = ?", id).
		Updates(map[string]any{"approval": approval, "reply": reply}).Error
}

func (r *repository) BulkInsert(ctx context.Context, rows []Request) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
