package request

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lu2aa/attendance-system/internal/employee"
	requesterrors "github.com/lu2aa/attendance-system/internal/request/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actorEmail string, req SubmitRequestRequest) (RequestResponse, error)
	GetAll(ctx context.Context) ([]RequestResponse, error)
	GetMine(ctx context.Context, email string) ([]RequestResponse, error)
	Approve(ctx context.Context, id, reply string) (RequestResponse, error)
	Reject(ctx context.Context, id, reply string) (RequestResponse, error)
	BulkInsert(ctx context.Context, rows []Request) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, logger: l}
}

// Submit files a request on behalf of the signed-in employee. The roster
// row supplies the number/name/email snapshot; the request starts pending.
func (s *service) Submit(ctx context.Context, actorEmail string, req SubmitRequestRequest) (RequestResponse, error) {
	email := strings.ToLower(strings.TrimSpace(actorEmail))
	s.logger.Debug("submit request requested",
		zap.String("email", email),
		zap.String("request_type", req.RequestType),
	)

	emp, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrNoRosterEmployee
		}
		s.logger.Error("submit request roster lookup failed", zap.Error(err))
		return RequestResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", strings.TrimSpace(req.StartDate))
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidDateFormat
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidDateFormat
	}
	backToWork, err := parseOptionalDate(req.BackToWorkDate)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row := &Request{
		ID:             uuid.New(),
		EmployeeNumber: emp.EmployeeNumber,
		EmployeeName:   emp.EmployeeName,
		Email:          emp.Email,
		RequestType:    strings.TrimSpace(req.RequestType),
		StartDate:      startDate,
		EndDate:        endDate,
		Allowance:      strings.TrimSpace(req.Allowance),
		Notes:          req.Notes,
		BackToWorkDate: backToWork,
		Approval:       ApprovalPending,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("submit request persist failed", zap.Error(err))
		return RequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("submit request commit failed", zap.Error(err))
		return RequestResponse{}, err
	}

	s.logger.Info("submit request success",
		zap.String("employee_number", row.EmployeeNumber),
		zap.String("request_type", row.RequestType),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]RequestResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all requests failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetMine(ctx context.Context, email string) ([]RequestResponse, error) {
	rows, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		s.logger.Error("get own requests failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Approve(ctx context.Context, id, reply string) (RequestResponse, error) {
	return s.decide(ctx, id, ApprovalApproved, reply)
}

func (s *service) Reject(ctx context.Context, id, reply string) (RequestResponse, error) {
	return s.decide(ctx, id, ApprovalRejected, reply)
}

func (s *service) decide(ctx context.Context, id, approval, reply string) (RequestResponse, error) {
	s.logger.Debug("decide request", zap.String("id", id), zap.String("approval", approval))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}

	if row.Approval != ApprovalPending {
		return RequestResponse{}, requesterrors.ErrNotPending
	}

	if err := qtx.UpdateDecision(ctx, id, approval, reply); err != nil {
		s.logger.Error("decide request persist failed", zap.Error(err))
		return RequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("decide request commit failed", zap.Error(err))
		return RequestResponse{}, err
	}

	row.Approval = approval
	row.Reply = reply

	s.logger.Info("request decided",
		zap.String("id", id),
		zap.String("approval", approval),
	)
	return mapToResponse(*row), nil
}

func (s *service) BulkInsert(ctx context.Context, rows []Request) error {
	if err := s.repo.BulkInsert(ctx, rows); err != nil {
		s.logger.Error("bulk insert requests failed", zap.Int("rows", len(rows)), zap.Error(err))
		return err
	}
	s.logger.Info("bulk insert requests success", zap.Int("rows", len(rows)))
	return nil
}

func parseOptionalDate(v *string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*v))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:             r.ID.String(),
		EmployeeNumber: r.EmployeeNumber,
		EmployeeName:   r.EmployeeName,
		Email:          r.Email,
		RequestType:    r.RequestType,
		StartDate:      r.StartDate.Format("2006-01-02"),
		Allowance:      r.Allowance,
		Notes:          r.Notes,
		Approval:       r.Approval,
		Reply:          r.Reply,
	}
	if r.EndDate != nil {
		v := r.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	if r.BackToWorkDate != nil {
		v := r.BackToWorkDate.Format("2006-01-02")
		resp.BackToWorkDate = &v
	}
	return resp
}

func mapToListResponse(rows []Request) []RequestResponse {
	res := make([]RequestResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
