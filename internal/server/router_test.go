package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fuzumoe/shoplist-api/internal/server"
	"github.com/fuzumoe/shoplist-api/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Resolve(authHeader string) (*service.Resolution, error) {
	args := m.Called(authHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Resolution), args.Error(1)
}

func (m *MockAuthService) Login(username, password string) (string, error) {
	args := m.Called(username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(tokenString string) error {
	args := m.Called(tokenString)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(userID uint, tokenString, oldPassword, newPassword string) error {
	args := m.Called(userID, tokenString, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) CleanupExpired() error {
	args := m.Called()
	return args.Error(0)
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := new(MockAuthService)
	auth.On("Resolve", "").Return(&service.Resolution{
		State:   service.StateAnonymous,
		Message: service.MsgNoPermission,
	}, nil)

	public := server.RegistrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/open", func(c *gin.Context) { c.String(http.StatusOK, "open") })
	})
	protected := server.RegistrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/closed", func(c *gin.Context) { c.String(http.StatusOK, "closed") })
	})

	engine := gin.New()
	server.RegisterRoutes(engine, auth,
		[]server.RouteRegistrar{public},
		[]server.RouteRegistrar{protected},
	)

	t.Run("Public Route Needs No Token", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "open", w.Body.String())
	})

	t.Run("Protected Route Is Guarded", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/closed", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRegistrarFunc(t *testing.T) {
	gin.SetMode(gin.TestMode)

	called := false
	reg := server.RegistrarFunc(func(rg *gin.RouterGroup) { called = true })

	engine := gin.New()
	reg.RegisterRoutes(engine.Group("/"))
	assert.True(t, called)
}
