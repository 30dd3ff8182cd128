package dto

import (
	"time"

	"vidhub/internal/httpapi/models"
)

// BlockedUserResponse is one entry of the caller's blocked-users list
type BlockedUserResponse struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Avatar    *string   `json:"avatar,omitempty"`
	BlockedAt time.Time `json:"blocked_at"`
}

// FromModelToBlockedUserResponse converts a Block model (with its Blocked user
// preloaded) to a BlockedUserResponse DTO.
func FromModelToBlockedUserResponse(block *models.Block) *BlockedUserResponse {
	return &BlockedUserResponse{
		UserID:    block.BlockedID,
		Username:  block.Blocked.Username,
		Avatar:    block.Blocked.Avatar,
		BlockedAt: block.CreatedAt,
	}
}
