package handler

import (
	"errors"
	"net/http"
	"strconv"

	"vidhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type BlockHandler struct {
	blockService service.BlockService
}

func NewBlockHandler(blockService service.BlockService) *BlockHandler {
	return &BlockHandler{blockService: blockService}
}

// RegisterRoutes registers block-related routes; all of them act on behalf of
// the authenticated caller.
func (h *BlockHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	users := router.Group("/users", requireAuth)
	{
		users.POST("/:id/block", h.Block)
		users.POST("/:id/unblock", h.Unblock)
	}

	router.GET("/blocks", requireAuth, h.ListBlocked)
}

// Block hides the target user's comments from the caller's view
// POST /api/users/:id/block
func (h *BlockHandler) Block(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.blockService.Block(userID, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfBlock):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyBlocked):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user blocked"})
}

// Unblock removes the caller's block on the target user
// POST /api/users/:id/unblock
func (h *BlockHandler) Unblock(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.blockService.Unblock(userID, targetID); err != nil {
		if errors.Is(err, service.ErrBlockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user unblocked"})
}

// ListBlocked returns the caller's blocked users
// GET /api/blocks
func (h *BlockHandler) ListBlocked(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	blocked, err := h.blockService.ListBlocked(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, blocked)
}
