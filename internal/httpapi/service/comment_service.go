package service

import (
	"errors"
	"strings"
	"time"

	"vidhub/internal/httpapi/dto"
	"vidhub/internal/httpapi/models"
	"vidhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("not the comment owner")
	ErrEmptyContent    = errors.New("comment content is empty")
)

// CommentService owns the comment lifecycle (create, edit, delete, all
// author-only for writes) and composes the filtered views the pages render.
type CommentService interface {
	CreateComment(videoID, authorID int64, content string) (*dto.CommentResponse, error)
	UpdateComment(commentID, requesterID int64, content string) (*dto.CommentResponse, error)
	DeleteComment(commentID, requesterID int64) error
	ListVideoComments(videoID int64, viewerID *int64) ([]dto.CommentResponse, error)
	ListUserComments(userID int64) ([]dto.ProfileCommentResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
}

func NewCommentService(commentRepo repository.CommentRepository, videoRepo repository.VideoRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
	}
}

// CreateComment persists a new comment with a server-assigned timestamp
// (UTC, whole seconds, the resolution the original pages display).
func (s *commentService) CreateComment(videoID, authorID int64, content string) (*dto.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	if _, err := s.videoRepo.FindByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		VideoID:   videoID,
		UserID:    authorID,
		Content:   content,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// reload with the author attached
	comment, err := s.commentRepo.FindByID(comment.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// UpdateComment replaces the content of the requester's own comment. The id,
// author and timestamp stay as they were.
func (s *commentService) UpdateComment(commentID, requesterID int64, content string) (*dto.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if comment.UserID != requesterID {
		return nil, ErrNotCommentOwner
	}

	if err := s.commentRepo.UpdateContent(commentID, content); err != nil {
		return nil, err
	}

	comment.Content = content
	return dto.FromModelToCommentResponse(comment), nil
}

// DeleteComment removes the requester's own comment permanently.
func (s *commentService) DeleteComment(commentID, requesterID int64) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.UserID != requesterID {
		return ErrNotCommentOwner
	}

	return s.commentRepo.Delete(commentID)
}

// ListVideoComments returns a video's comments newest-first for the given
// viewer. An authenticated viewer never sees comments from users they have
// blocked; anonymous viewers see everything, since blocking is a viewer-side
// preference, not moderation.
func (s *commentService) ListVideoComments(videoID int64, viewerID *int64) ([]dto.CommentResponse, error) {
	if _, err := s.videoRepo.FindByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByVideo(videoID, viewerID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comments[i]))
	}
	return responses, nil
}

// ListUserComments returns everything a user has written, joined with video
// titles, newest-first. Profile display is public and unfiltered.
func (s *commentService) ListUserComments(userID int64) ([]dto.ProfileCommentResponse, error) {
	comments, err := s.commentRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProfileCommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToProfileCommentResponse(&comments[i]))
	}
	return responses, nil
}
