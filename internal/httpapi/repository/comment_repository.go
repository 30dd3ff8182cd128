package repository

import (
	"vidhub/internal/httpapi/models"

	"gorm.io/gorm"
)

// CommentRepository handles comment persistence. Visibility filtering lives
// here as an anti-join so the exclusion list never becomes a dynamically
// built placeholder string.
type CommentRepository interface {
	Create(comment *models.Comment) error
	UpdateContent(commentID int64, content string) error
	Delete(commentID int64) error
	FindByID(commentID int64) (*models.Comment, error)
	ListByVideo(videoID int64, viewerID *int64) ([]models.Comment, error)
	ListByUser(userID int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// UpdateContent replaces the content column only. The created_at timestamp
// and author are never touched by an edit.
func (r *commentRepository) UpdateContent(commentID int64, content string) error {
	return r.db.Model(&models.Comment{}).Where("id = ?", commentID).Update("content", content).Error
}

func (r *commentRepository) Delete(commentID int64) error {
	return r.db.Delete(&models.Comment{}, "id = ?", commentID).Error
}

func (r *commentRepository) FindByID(commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", commentID).
		Preload("User").
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByVideo returns a video's comments with their authors, newest-id-first.
// When viewerID is set, comments whose author sits in the viewer's block set
// are excluded with an anti-join subquery; an empty block set excludes zero
// rows. Anonymous viewers (nil viewerID) get the unfiltered list.
func (r *commentRepository) ListByVideo(videoID int64, viewerID *int64) ([]models.Comment, error) {
	query := r.db.Where("video_id = ?", videoID)

	if viewerID != nil {
		blocked := r.db.Model(&models.Block{}).
			Select("blocked_id").
			Where("blocker_id = ?", *viewerID)
		query = query.Where("user_id NOT IN (?)", blocked)
	}

	var comments []models.Comment
	err := query.
		Preload("User").
		Order("id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// ListByUser returns a user's comments with their videos, newest-id-first.
// Used for the public profile page, so no block filtering applies.
func (r *commentRepository) ListByUser(userID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("user_id = ?", userID).
		Preload("Video").
		Order("id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
