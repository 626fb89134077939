package attendance

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"time"

	attendanceerrors "github.com/lu2aa/attendance-system/internal/attendance/errors"
	"github.com/lu2aa/attendance-system/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, filter ListFilter, actorNumber string, canReadAll bool) ([]AttendanceResponse, error)
	BulkInsert(ctx context.Context, rows []Attendance) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error) {
	s.logger.Debug("create attendance requested",
		zap.String("employee_number", req.EmployeeNumber),
		zap.String("check_date", req.CheckDate),
	)

	checkDate, err := time.Parse("2006-01-02", strings.TrimSpace(req.CheckDate))
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidCheckDate
	}
	for _, t := range []*string{req.CheckInTime, req.CheckOutTime} {
		if t != nil && *t != "" && !timePattern.MatchString(*t) {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidTime
		}
	}

	exists, err := s.employeeRepo.ExistsByNumber(ctx, req.EmployeeNumber)
	if err != nil {
		s.logger.Error("create attendance roster check failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if !exists {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row := &Attendance{
		ID:             uuid.New(),
		EmployeeNumber: strings.TrimSpace(req.EmployeeNumber),
		CheckDate:      checkDate,
		CheckInTime:    req.CheckInTime,
		CheckOutTime:   req.CheckOutTime,
		Status:         strings.TrimSpace(req.Status),
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("create attendance success",
		zap.String("employee_number", row.EmployeeNumber),
		zap.String("check_date", req.CheckDate),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter, actorNumber string, canReadAll bool) ([]AttendanceResponse, error) {
	// Non-admins only ever see their own movements
	if !canReadAll {
		filter.EmployeeNumber = actorNumber
	}

	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all attendance failed", zap.Error(err))
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) BulkInsert(ctx context.Context, rows []Attendance) error {
	if err := s.repo.BulkInsert(ctx, rows); err != nil {
		s.logger.Error("bulk insert attendance failed", zap.Int("rows", len(rows)), zap.Error(err))
		return err
	}
	s.logger.Info("bulk insert attendance success", zap.Int("rows", len(rows)))
	return nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeNumber: a.EmployeeNumber,
		CheckDate:      a.CheckDate.Format("2006-01-02"),
		CheckInTime:    a.CheckInTime,
		CheckOutTime:   a.CheckOutTime,
		Status:         a.Status,
		Notes:          a.Notes,
	}
}
