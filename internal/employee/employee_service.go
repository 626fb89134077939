package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/lu2aa/attendance-system/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const employeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByNumber(ctx context.Context, employeeNumber string) (EmployeeResponse, error)
	GetByEmail(ctx context.Context, email string) (EmployeeResponse, error)
	Update(ctx context.Context, employeeNumber string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, employeeNumber string) error
	BulkUpsert(ctx context.Context, rows []Employee) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_number", req.EmployeeNumber),
		zap.String("email", req.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	e := fromRequest(req)
	e.ID = uuid.New()

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_number", e.EmployeeNumber),
	)

	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

// GetOptions serves the dropdown list from Redis; singleflight keeps a cold
// cache from stampeding the database when several admins open a form at once.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, employeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(employeeOptionsKey, func() (interface{}, error) {
		rows, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOption, len(rows))
		for i, r := range rows {
			resp[i] = EmployeeOption{
				EmployeeNumber: r.EmployeeNumber,
				EmployeeName:   r.EmployeeName,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, employeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByNumber(ctx context.Context, employeeNumber string) (EmployeeResponse, error) {
	e, err := s.repo.FindByNumber(ctx, employeeNumber)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (EmployeeResponse, error) {
	e, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, employeeNumber string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_number", employeeNumber))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	existing, err := qtx.FindByNumber(ctx, employeeNumber)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	updated := fromRequest(req)
	updated.ID = existing.ID
	updated.EmployeeNumber = existing.EmployeeNumber
	updated.CreatedAt = existing.CreatedAt

	if err := qtx.Update(ctx, updated); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update employee success", zap.String("employee_number", employeeNumber))

	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, employeeNumber string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_number", employeeNumber))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, employeeNumber); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("delete employee success", zap.String("employee_number", employeeNumber))
	return nil
}

func (s *service) BulkUpsert(ctx context.Context, rows []Employee) error {
	if err := s.repo.BulkUpsert(ctx, rows); err != nil {
		s.logger.Error("bulk upsert employees failed", zap.Int("rows", len(rows)), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	s.logger.Info("bulk upsert employees success", zap.Int("rows", len(rows)))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, employeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", employeeOptionsKey),
		)
	}
}

func fromRequest(req CreateEmployeeRequest) *Employee {
	return &Employee{
		EmployeeNumber:      strings.TrimSpace(req.EmployeeNumber),
		EmployeeName:        strings.TrimSpace(req.EmployeeName),
		Email:               strings.ToLower(strings.TrimSpace(req.Email)),
		JobTitle:            strings.TrimSpace(req.JobTitle),
		Grade:               req.Grade,
		WorkStatus:          req.WorkStatus,
		WorkDays:            req.WorkDays,
		PartTime:            req.PartTime,
		Shift:               req.Shift,
		IsChristian:         req.IsChristian,
		NursingHour:         req.NursingHour,
		Disability:          req.Disability,
		RegularLeaveBalance: req.RegularLeaveBalance,
		CasualLeaveBalance:  req.CasualLeaveBalance,
		AbsenceDaysCount:    req.AbsenceDaysCount,
		PhoneNumber:         req.PhoneNumber,
		NationalID:          req.NationalID,
		Link:                req.Link,
		NursingHourType:     req.NursingHourType,
		NursingHourStart:    req.NursingHourStart,
		NursingHourEnd:      req.NursingHourEnd,
		MonthlyEvaluation:   req.MonthlyEvaluation,
		Training:            req.Training,
		Notes:               req.Notes,
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                  e.ID.String(),
		EmployeeNumber:      e.EmployeeNumber,
		EmployeeName:        e.EmployeeName,
		Email:               e.Email,
		JobTitle:            e.JobTitle,
		Grade:               e.Grade,
		WorkStatus:          e.WorkStatus,
		WorkDays:            e.WorkDays,
		PartTime:            e.PartTime,
		Shift:               e.Shift,
		IsChristian:         e.IsChristian,
		NursingHour:         e.NursingHour,
		Disability:          e.Disability,
		RegularLeaveBalance: e.RegularLeaveBalance,
		CasualLeaveBalance:  e.CasualLeaveBalance,
		AbsenceDaysCount:    e.AbsenceDaysCount,
		PhoneNumber:         e.PhoneNumber,
		NationalID:          e.NationalID,
		Link:                e.Link,
		NursingHourType:     e.NursingHourType,
		NursingHourStart:    e.NursingHourStart,
		NursingHourEnd:      e.NursingHourEnd,
		MonthlyEvaluation:   e.MonthlyEvaluation,
		Training:            e.Training,
		Notes:               e.Notes,
	}
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
