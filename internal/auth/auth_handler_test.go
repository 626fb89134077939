package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lu2aa/attendance-system/internal/auth"
	autherrors "github.com/lu2aa/attendance-system/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	registerFn     func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error)
	loginFn        func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error)
	refreshTokenFn func(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error)
	getMeFn        func(ctx context.Context, userID string) (*auth.AuthResponse, error)
}

func (f *fakeService) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	return f.registerFn(ctx, req)
}
func (f *fakeService) Login(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
	return f.loginFn(ctx, email, password)
}
func (f *fakeService) RefreshToken(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error) {
	return f.refreshTokenFn(ctx, refreshToken)
}
func (f *fakeService) GetMe(ctx context.Context, userID string) (*auth.AuthResponse, error) {
	return f.getMeFn(ctx, userID)
}

func TestHandler_Login_SetsCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		loginFn: func(_ context.Context, email, password string) (string, string, auth.AuthResponse, error) {
			assert.Equal(t, "sara@example.com", email)
			return "access-token", "refresh-token", auth.AuthResponse{
				ID:    uuid.New().String(),
				Email: email,
			}, nil
		},
	}

	h := auth.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"sara@example.com","password":"secret123"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")

	cookies := w.Result().Cookies()
	names := make([]string, len(cookies))
	for i, ck := range cookies {
		names[i] = ck.Name
	}
	assert.Contains(t, names, "access_token")
	assert.Contains(t, names, "refresh_token")
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		loginFn: func(context.Context, string, string) (string, string, auth.AuthResponse, error) {
			return "", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials
		},
	}

	h := auth.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"sara@example.com","password":"wrong"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Register_ShortPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := auth.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"email":"sara@example.com","password":"123"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Refresh_FromBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		refreshTokenFn: func(_ context.Context, refreshToken string) (string, string, auth.AuthResponse, error) {
			assert.Equal(t, "old-refresh", refreshToken)
			return "new-access", "new-refresh", auth.AuthResponse{Email: "sara@example.com"}, nil
		},
	}

	h := auth.NewHandler(svc)

	// no cookie set, the token arrives in the body instead
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/refresh",
		strings.NewReader(`{"refresh_token":"old-refresh"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Refresh(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "new-access")
}
