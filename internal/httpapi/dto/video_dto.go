package dto

import "vidhub/internal/httpapi/models"

// VideoResponse for returning catalog entries
type VideoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Filepath    string `json:"filepath"`
}

// FromModelToVideoResponse converts a Video model to a VideoResponse DTO
func FromModelToVideoResponse(video *models.Video) *VideoResponse {
	return &VideoResponse{
		ID:          video.ID,
		Title:       video.Title,
		Description: video.Description,
		Filepath:    video.Filepath,
	}
}

// VideoDetailResponse is the video page payload: the video plus its comments,
// already filtered for the requesting viewer.
type VideoDetailResponse struct {
	Video    VideoResponse     `json:"video"`
	Comments []CommentResponse `json:"comments"`
}
