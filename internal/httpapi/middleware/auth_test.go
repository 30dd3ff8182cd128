package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidhub/internal/httpapi/models"
	"vidhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(username, password string) (*models.User, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(username, password string) (string, string, *models.User, error) {
	args := m.Called(username, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) RevokeToken(refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) AccessTokenTTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

func setupProtectedRouter(authService service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth(authService), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := setupProtectedRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuthService.AssertNotCalled(t, "ValidateToken")
}

func TestRequireAuth_BadHeaderFormat(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := setupProtectedRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "token abc")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuthService.AssertNotCalled(t, "ValidateToken")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("ValidateToken", "bad").Return(nil, errors.New("expired"))
	router := setupProtectedRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("ValidateToken", "good").
		Return(&service.Claims{UserID: 42, Username: "alice"}, nil)
	router := setupProtectedRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestOptionalAuth_NoHeaderPassesThrough(t *testing.T) {
	mockAuthService := new(MockAuthService)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/open", OptionalAuth(mockAuthService), func(c *gin.Context) {
		_, authed := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"authed": authed})
	})

	req, _ := http.NewRequest("GET", "/open", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "false")
}

func TestOptionalAuth_InvalidTokenStaysAnonymous(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("ValidateToken", "bad").Return(nil, errors.New("expired"))
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/open", OptionalAuth(mockAuthService), func(c *gin.Context) {
		_, authed := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"authed": authed})
	})

	req, _ := http.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "false")
}

func TestOptionalAuth_ValidTokenSetsIdentity(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("ValidateToken", "good").
		Return(&service.Claims{UserID: 7, Username: "bob"}, nil)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/open", OptionalAuth(mockAuthService), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	req, _ := http.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "7")
}
