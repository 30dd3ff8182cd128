package handler

import (
	"errors"
	"net/http"
	"strconv"

	"vidhub/internal/httpapi/dto"
	"vidhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoService   service.VideoService
	commentService service.CommentService
}

func NewVideoHandler(videoService service.VideoService, commentService service.CommentService) *VideoHandler {
	return &VideoHandler{
		videoService:   videoService,
		commentService: commentService,
	}
}

// RegisterRoutes registers the catalog routes. Both are public; the detail
// page picks up the viewer identity when a token is present so comment
// filtering applies.
func (h *VideoHandler) RegisterRoutes(router *gin.RouterGroup, optionalAuth gin.HandlerFunc) {
	videos := router.Group("/videos")
	{
		videos.GET("", h.List)
		videos.GET("/:video_id", optionalAuth, h.Get)
	}
}

// List returns the whole catalog, newest first
// GET /api/videos
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.videoService.ListVideos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, videos)
}

// Get returns a video together with its comments, filtered for the viewer
// GET /api/videos/:video_id
func (h *VideoHandler) Get(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("video_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video ID"})
		return
	}

	video, err := h.videoService.GetVideo(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	comments, err := h.commentService.ListVideoComments(videoID, viewerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.VideoDetailResponse{
		Video:    *video,
		Comments: comments,
	})
}
