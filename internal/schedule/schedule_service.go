package schedule

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/lu2aa/attendance-system/internal/employee"
	scheduleerrors "github.com/lu2aa/attendance-system/internal/schedule/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]ScheduleResponse, error)
	BulkInsert(ctx context.Context, rows []ScheduleEntry) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error) {
	s.logger.Debug("create schedule entry requested", zap.String("date", req.Date))

	date, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
	if err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidDate
	}

	// Every filled slot has to point at a real roster employee.
	for _, slot := range []*string{req.EveningEmployee1, req.EveningEmployee2, req.NightEmployee1} {
		if slot == nil || strings.TrimSpace(*slot) == "" {
			continue
		}
		exists, err := s.employeeRepo.ExistsByNumber(ctx, strings.TrimSpace(*slot))
		if err != nil {
			s.logger.Error("create schedule roster check failed", zap.Error(err))
			return ScheduleResponse{}, err
		}
		if !exists {
			return ScheduleResponse{}, scheduleerrors.ErrEmployeeNotFound
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create schedule begin tx failed", zap.Error(err))
		return ScheduleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row := &ScheduleEntry{
		ID:               uuid.New(),
		Day:              strings.TrimSpace(req.Day),
		Date:             date,
		EveningEmployee1: trimSlot(req.EveningEmployee1),
		EveningEmployee2: trimSlot(req.EveningEmployee2),
		NightEmployee1:   trimSlot(req.NightEmployee1),
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create schedule persist failed", zap.Error(err))
		return ScheduleResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create schedule commit failed", zap.Error(err))
		return ScheduleResponse{}, err
	}

	s.logger.Info("create schedule success", zap.String("date", req.Date))
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]ScheduleResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all schedule failed", zap.Error(err))
		return nil, err
	}

	res := make([]ScheduleResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) BulkInsert(ctx context.Context, rows []ScheduleEntry) error {
	if err := s.repo.BulkInsert(ctx, rows); err != nil {
		s.logger.Error("bulk insert schedule failed", zap.Int("rows", len(rows)), zap.Error(err))
		return err
	}
	s.logger.Info("bulk insert schedule success", zap.Int("rows", len(rows)))
	return nil
}

func trimSlot(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

func mapToResponse(e ScheduleEntry) ScheduleResponse {
	return ScheduleResponse{
		ID:               e.ID.String(),
		Day:              e.Day,
		Date:             e.Date.Format("2006-01-02"),
		EveningEmployee1: e.EveningEmployee1,
		EveningEmployee2: e.EveningEmployee2,
		NightEmployee1:   e.NightEmployee1,
	}
}
