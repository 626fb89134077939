package authz

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// ManagerJobTitle is the job title that grants admin rights to a roster
// employee ("manager" in Arabic, as stored in the employees table).
const ManagerJobTitle = "مدير"

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

var ErrLookupFailed = errors.New("authz: privilege lookup failed")

// EmployeeDirectory resolves a roster employee's job title by email.
type EmployeeDirectory interface {
	JobTitleByEmail(ctx context.Context, email string) (string, error)
}

// ProfileFlags resolves the explicit admin flag on a sign-up profile.
type ProfileFlags interface {
	AdminFlagByEmail(ctx context.Context, email string) (bool, error)
}

// Service is the single privilege policy for the whole application. Every
// protected page used to re-derive "is this user an admin" on its own; all
// of those paths now funnel through IsPrivileged.
//
//go:generate mockgen -source=authz.go -destination=mock/authz_mock.go -package=mock
type Service interface {
	// IsPrivileged reports whether the identity may perform admin actions.
	// Order: superuser email, then manager job title, then profile flag.
	// Fails closed: any lookup error yields false with ErrLookupFailed.
	IsPrivileged(ctx context.Context, email string) (bool, error)

	// RoleFor maps the identity onto the casbin role vocabulary.
	RoleFor(ctx context.Context, email string) (string, error)

	// Enforce checks role/object/action against the static policy.
	Enforce(role, object, action string) (bool, error)
}

type service struct {
	superuserEmail string
	employees      EmployeeDirectory
	profiles       ProfileFlags
	enforcer       *Enforcer
	logger         *zap.Logger
}

func NewService(
	superuserEmail string,
	employees EmployeeDirectory,
	profiles ProfileFlags,
	enforcer *Enforcer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("authz.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authz.service")
	}
	return &service{
		superuserEmail: strings.ToLower(strings.TrimSpace(superuserEmail)),
		employees:      employees,
		profiles:       profiles,
		enforcer:       enforcer,
		logger:         l,
	}
}

func (s *service) IsPrivileged(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false, nil
	}

	if s.superuserEmail != "" && email == s.superuserEmail {
		return true, nil
	}

	jobTitle, err := s.employees.JobTitleByEmail(ctx, email)
	if err != nil {
		s.logger.Error("job title lookup failed", zap.String("email", email), zap.Error(err))
		return false, ErrLookupFailed
	}
	if jobTitle == ManagerJobTitle {
		return true, nil
	}

	flag, err := s.profiles.AdminFlagByEmail(ctx, email)
	if err != nil {
		s.logger.Error("profile flag lookup failed", zap.String("email", email), zap.Error(err))
		return false, ErrLookupFailed
	}
	return flag, nil
}

func (s *service) RoleFor(ctx context.Context, email string) (string, error) {
	privileged, err := s.IsPrivileged(ctx, email)
	if err != nil {
		return "", err
	}
	if privileged {
		return RoleAdmin, nil
	}
	return RoleEmployee, nil
}

func (s *service) Enforce(role, object, action string) (bool, error) {
	return s.enforcer.Enforce(role, object, action)
}
