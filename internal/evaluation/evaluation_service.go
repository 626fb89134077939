package evaluation

import (
	"context"
	"database/sql"
	"strings"

	evaluationerrors "github.com/lu2aa/attendance-system/internal/evaluation/errors"
	"github.com/lu2aa/attendance-system/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=evaluation_service.go -destination=mock/evaluation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEvaluationRequest) (EvaluationResponse, error)
	GetAll(ctx context.Context, filter ListFilter, actorNumber string, canReadAll bool) ([]EvaluationResponse, error)
	BulkInsert(ctx context.Context, rows []Evaluation) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("evaluation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("evaluation.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEvaluationRequest) (EvaluationResponse, error) {
	number := strings.TrimSpace(req.EmployeeNumber)

	exists, err := s.employeeRepo.ExistsByNumber(ctx, number)
	if err != nil {
		s.logger.Error("create evaluation roster check failed", zap.Error(err))
		return EvaluationResponse{}, err
	}
	if !exists {
		return EvaluationResponse{}, evaluationerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create evaluation begin tx failed", zap.Error(err))
		return EvaluationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row := &Evaluation{
		ID:                uuid.New(),
		EmployeeNumber:    number,
		EmployeeName:      strings.TrimSpace(req.EmployeeName),
		JobTitle:          strings.TrimSpace(req.JobTitle),
		PresentDays:       req.PresentDays,
		WorkHours:         req.WorkHours,
		RegularLeave:      req.RegularLeave,
		CasualLeave:       req.CasualLeave,
		LateMinutes:       req.LateMinutes,
		MonthlyEvaluation: req.MonthlyEvaluation,
		Timestamp:         req.Timestamp,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create evaluation persist failed", zap.Error(err))
		return EvaluationResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create evaluation commit failed", zap.Error(err))
		return EvaluationResponse{}, err
	}

	s.logger.Info("create evaluation success", zap.String("employee_number", row.EmployeeNumber))
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter, actorNumber string, canReadAll bool) ([]EvaluationResponse, error) {
	// Non-admins only ever see their own evaluations
	if !canReadAll {
		filter.EmployeeNumber = actorNumber
	}

	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all evaluations failed", zap.Error(err))
		return nil, err
	}

	res := make([]EvaluationResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) BulkInsert(ctx context.Context, rows []Evaluation) error {
	if err := s.repo.BulkInsert(ctx, rows); err != nil {
		s.logger.Error("bulk insert evaluations failed", zap.Int("rows", len(rows)), zap.Error(err))
		return err
	}
	s.logger.Info("bulk insert evaluations success", zap.Int("rows", len(rows)))
	return nil
}

func mapToResponse(e Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:                e.ID.String(),
		EmployeeNumber:    e.EmployeeNumber,
		EmployeeName:      e.EmployeeName,
		JobTitle:          e.JobTitle,
		PresentDays:       e.PresentDays,
		WorkHours:         e.WorkHours,
		RegularLeave:      e.RegularLeave,
		CasualLeave:       e.CasualLeave,
		LateMinutes:       e.LateMinutes,
		MonthlyEvaluation: e.MonthlyEvaluation,
		Timestamp:         e.Timestamp,
	}
}
