package database

import (
	"log/slog"

	"vidhub/internal/httpapi/models"

	"gorm.io/gorm"
)

// Seed inserts the sample catalog when the videos table is empty. The catalog
// is read-only at runtime, so this is the only write path to videos.
func Seed(db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.Model(&models.Video{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	videos := []models.Video{
		{Title: "Sample Video 1", Description: "Description of sample video 1", Filepath: "static/videos/sample1.mp4"},
		{Title: "Sample Video 2", Description: "Description of sample video 2", Filepath: "static/videos/sample2.mp4"},
	}
	if err := db.Create(&videos).Error; err != nil {
		return err
	}

	logger.Info("seeded video catalog", "count", len(videos))
	return nil
}
