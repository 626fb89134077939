package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "github.com/lu2aa/attendance-system/internal/auth/errors"
	"github.com/lu2aa/attendance-system/internal/authz"
	"github.com/lu2aa/attendance-system/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	authz        authz.Service
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, authzService authz.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, authz: authzService, logger: l}
}

// Register creates a profile for an email that already exists in the
// employee roster. The profile snapshots the employee number and name so
// self-service pages work without a join.
func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	emp, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrEmailNotInRoster
		}
		s.logger.Error("register roster lookup failed", zap.String("email", email), zap.Error(err))
		return AuthResponse{}, err
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	p := &Profile{
		ID:             uuid.New(),
		Email:          email,
		Password:       string(hashed),
		FullName:       emp.EmployeeName,
		EmployeeNumber: emp.EmployeeNumber,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("register persist failed", zap.String("email", email), zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("profile registered",
		zap.String("email", email),
		zap.String("employee_number", p.EmployeeNumber),
	)

	return mapProfile(p, false), nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	p, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	// Privilege is resolved at login so the token carries a UI hint; the
	// middleware re-checks the policy on every protected route.
	isAdmin, err := s.authz.IsPrivileged(ctx, email)
	if err != nil {
		isAdmin = false
	}

	accessToken, err := s.generateToken(p, isAdmin, 15*time.Minute)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(p, isAdmin, 7*24*time.Hour)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return accessToken, refreshToken, mapProfile(p, isAdmin), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	isAdmin, err := s.authz.IsPrivileged(ctx, p.Email)
	if err != nil {
		isAdmin = false
	}

	newAccessToken, err := s.generateToken(p, isAdmin, 15*time.Minute)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := s.generateToken(p, isAdmin, 7*24*time.Hour)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, mapProfile(p, isAdmin), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	isAdmin, err := s.authz.IsPrivileged(ctx, p.Email)
	if err != nil {
		isAdmin = false
	}

	resp := mapProfile(p, isAdmin)
	return &resp, nil
}

func (s *service) generateToken(p *Profile, isAdmin bool, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":         p.ID.String(),
		"email":           p.Email,
		"employee_number": p.EmployeeNumber,
		"is_admin":        isAdmin,
		"exp":             time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapProfile(p *Profile, isAdmin bool) AuthResponse {
	return AuthResponse{
		ID:             p.ID.String(),
		Email:          p.Email,
		FullName:       p.FullName,
		EmployeeNumber: p.EmployeeNumber,
		IsAdmin:        isAdmin,
	}
}
