package handler

import (
	"context"
	"time"

	"vidhub/internal/httpapi/dto"
	"vidhub/internal/httpapi/models"
	"vidhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// fakeAuth injects an authenticated identity the way the auth middleware does.
func fakeAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

// MockAuthService mocks service.AuthService
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

// MockVideoService mocks service.VideoService
type MockVideoService struct {
	mock.Mock
}

func (m *MockVideoService) ListVideos(ctx context.Context) ([]dto.VideoResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VideoResponse), args.Error(1)
}

func (m *MockVideoService) GetVideo(ctx context.Context, id int64) (*dto.VideoResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VideoResponse), args.Error(1)
}

// MockCommentService mocks service.CommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) CreateComment(videoID, authorID int64, content string) (*dto.CommentResponse, error) {
	args := m.Called(videoID, authorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) UpdateComment(commentID, requesterID int64, content string) (*dto.CommentResponse, error) {
	args := m.Called(commentID, requesterID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) DeleteComment(commentID, requesterID int64) error {
	args := m.Called(commentID, requesterID)
	return args.Error(0)
}

func (m *MockCommentService) ListVideoComments(videoID int64, viewerID *int64) ([]dto.CommentResponse, error) {
	args := m.Called(videoID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) ListUserComments(userID int64) ([]dto.ProfileCommentResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProfileCommentResponse), args.Error(1)
}

// MockBlockService mocks service.BlockService
type MockBlockService struct {
	mock.Mock
}

func (m *MockBlockService) Block(blockerID, targetID int64) error {
	args := m.Called(blockerID, targetID)
	return args.Error(0)
}

func (m *MockBlockService) Unblock(blockerID, targetID int64) error {
	args := m.Called(blockerID, targetID)
	return args.Error(0)
}

func (m *MockBlockService) IsBlocked(blockerID, targetID int64) (bool, error) {
	args := m.Called(blockerID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlockService) ListBlocked(blockerID int64) ([]dto.BlockedUserResponse, error) {
	args := m.Called(blockerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BlockedUserResponse), args.Error(1)
}

// MockUserService mocks service.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(userID int64) (*dto.ProfileResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfileResponse), args.Error(1)
}

func (m *MockUserService) UpdateAvatar(userID int64, filename string) error {
	args := m.Called(userID, filename)
	return args.Error(0)
}
