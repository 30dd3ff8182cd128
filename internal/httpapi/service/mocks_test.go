package service

import (
	"vidhub/internal/httpapi/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id int64) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(id int64, avatar string) error {
	args := m.Called(id, avatar)
	return args.Error(0)
}

// MockRefreshTokenRepository mocks repository.RefreshTokenRepository
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(refreshToken *models.RefreshToken) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(tokenString string) (*models.RefreshToken, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Delete(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

// MockVideoRepository mocks repository.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) List() ([]models.Video, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Video), args.Error(1)
}

func (m *MockVideoRepository) FindByID(id int64) (*models.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

// MockCommentRepository mocks repository.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) UpdateContent(commentID int64, content string) error {
	args := m.Called(commentID, content)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(commentID int64) error {
	args := m.Called(commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(commentID int64) (*models.Comment, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByVideo(videoID int64, viewerID *int64) ([]models.Comment, error) {
	args := m.Called(videoID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByUser(userID int64) ([]models.Comment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

// MockBlockRepository mocks repository.BlockRepository
type MockBlockRepository struct {
	mock.Mock
}

func (m *MockBlockRepository) Create(block *models.Block) error {
	args := m.Called(block)
	return args.Error(0)
}

func (m *MockBlockRepository) DeletePair(blockerID, blockedID int64) (int64, error) {
	args := m.Called(blockerID, blockedID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlockRepository) Exists(blockerID, blockedID int64) (bool, error) {
	args := m.Called(blockerID, blockedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlockRepository) ListByBlocker(blockerID int64) ([]models.Block, error) {
	args := m.Called(blockerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Block), args.Error(1)
}
