package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"vidhub/internal/httpapi/dto"
	"vidhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

var allowedAvatarExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type UserHandler struct {
	userService service.UserService
	avatarDir   string
}

func NewUserHandler(userService service.UserService, avatarDir string) *UserHandler {
	return &UserHandler{
		userService: userService,
		avatarDir:   avatarDir,
	}
}

// RegisterRoutes registers profile routes. Profiles are public; the avatar
// upload acts on the authenticated caller.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	router.GET("/users/:id", h.GetProfile)
	router.POST("/profile/avatar", requireAuth, h.UploadAvatar)
}

// GetProfile returns a user's identity and comment history
// GET /api/users/:id
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UploadAvatar stores a new avatar image for the caller
// POST /api/profile/avatar
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no avatar file"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedAvatarExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported avatar file type"})
		return
	}

	// prefix with the owner id so users never clobber each other's files
	filename := fmt.Sprintf("%d_%s", userID, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.avatarDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.UpdateAvatar(userID, filename); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.AvatarResponse{Avatar: filename})
}
