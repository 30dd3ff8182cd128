package repository

import (
	"vidhub/internal/httpapi/models"

	"gorm.io/gorm"
)

// VideoRepository reads the video catalog. The catalog is seeded at startup
// and has no mutation API.
type VideoRepository interface {
	List() ([]models.Video, error)
	FindByID(id int64) (*models.Video, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

// List returns all videos newest-id-first.
func (r *videoRepository) List() ([]models.Video, error) {
	var videos []models.Video
	if err := r.db.Order("id DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) FindByID(id int64) (*models.Video, error) {
	var video models.Video
	if err := r.db.First(&video, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}
