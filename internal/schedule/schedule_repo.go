package schedule

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, entry *ScheduleEntry) error
	FindAll(ctx context.Context, filter ListFilter) ([]ScheduleEntry, error)
	BulkInsert(ctx context.Context, rows []ScheduleEntry) error
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

func (r *repository) Create(ctx context.Context, entry *ScheduleEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]ScheduleEntry, error) {
	q := r.db.WithContext(ctx).Model(&ScheduleEntry{})
	if filter.From != "" {
		q = q.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("date <= ?", filter.To)
	}

	var rows []ScheduleEntry
	err := q.Order("date ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) BulkInsert(ctx context.Context, rows []ScheduleEntry) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
