package dto

import (
	"time"

	"vidhub/internal/httpapi/models"
)

// CreateCommentRequest for posting a comment on a video
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// UpdateCommentRequest for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// CommentResponse carries a comment with its author identity, the shape the
// video page renders.
type CommentResponse struct {
	ID        int64     `json:"id"`
	VideoID   int64     `json:"video_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Avatar    *string   `json:"avatar,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToCommentResponse converts a Comment model (with its User preloaded)
// to a CommentResponse DTO.
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		UserID:    comment.UserID,
		Username:  comment.User.Username,
		Avatar:    comment.User.Avatar,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

// ProfileCommentResponse carries a comment joined with its video title, the
// shape the public profile page renders.
type ProfileCommentResponse struct {
	ID         int64     `json:"id"`
	VideoID    int64     `json:"video_id"`
	VideoTitle string    `json:"video_title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromModelToProfileCommentResponse converts a Comment model (with its Video
// preloaded) to a ProfileCommentResponse DTO.
func FromModelToProfileCommentResponse(comment *models.Comment) *ProfileCommentResponse {
	return &ProfileCommentResponse{
		ID:         comment.ID,
		VideoID:    comment.VideoID,
		VideoTitle: comment.Video.Title,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt,
	}
}
