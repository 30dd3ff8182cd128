package service

import (
	"errors"

	"vidhub/internal/httpapi/dto"
	"vidhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

// UserService composes the public profile view and owns the one mutable piece
// of a user record, the avatar reference.
type UserService interface {
	GetProfile(userID int64) (*dto.ProfileResponse, error)
	UpdateAvatar(userID int64, filename string) error
}

type userService struct {
	userRepo       repository.UserRepository
	commentService CommentService
}

func NewUserService(userRepo repository.UserRepository, commentService CommentService) UserService {
	return &userService{
		userRepo:       userRepo,
		commentService: commentService,
	}
}

// GetProfile returns a user's identity plus all their comments joined with
// video titles, newest-first.
func (s *userService) GetProfile(userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	comments, err := s.commentService.ListUserComments(userID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:       user.ID,
		Username: user.Username,
		Avatar:   user.Avatar,
		Comments: comments,
	}, nil
}

func (s *userService) UpdateAvatar(userID int64, filename string) error {
	return s.userRepo.UpdateAvatar(userID, filename)
}
