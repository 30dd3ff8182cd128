package service

import (
	"context"
	"errors"

	"vidhub/internal/httpapi/dto"
	"vidhub/internal/httpapi/models"
	"vidhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

var ErrVideoNotFound = errors.New("video not found")

// VideoCache is a read-through cache for the catalog listing. The catalog is
// seeded at startup and read-only, so entries only ever expire by TTL.
type VideoCache interface {
	GetCatalog(ctx context.Context) ([]models.Video, bool)
	SetCatalog(ctx context.Context, videos []models.Video)
}

type VideoService interface {
	ListVideos(ctx context.Context) ([]dto.VideoResponse, error)
	GetVideo(ctx context.Context, id int64) (*dto.VideoResponse, error)
}

type videoService struct {
	videoRepo repository.VideoRepository
	cache     VideoCache // nil when redis is not configured
}

func NewVideoService(videoRepo repository.VideoRepository, cache VideoCache) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		cache:     cache,
	}
}

// ListVideos returns the whole catalog newest-id-first.
func (s *videoService) ListVideos(ctx context.Context) ([]dto.VideoResponse, error) {
	var videos []models.Video

	if s.cache != nil {
		if cached, ok := s.cache.GetCatalog(ctx); ok {
			videos = cached
		}
	}

	if videos == nil {
		fetched, err := s.videoRepo.List()
		if err != nil {
			return nil, err
		}
		videos = fetched
		if s.cache != nil {
			s.cache.SetCatalog(ctx, videos)
		}
	}

	responses := make([]dto.VideoResponse, 0, len(videos))
	for i := range videos {
		responses = append(responses, *dto.FromModelToVideoResponse(&videos[i]))
	}
	return responses, nil
}

func (s *videoService) GetVideo(ctx context.Context, id int64) (*dto.VideoResponse, error) {
	video, err := s.videoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return dto.FromModelToVideoResponse(video), nil
}
