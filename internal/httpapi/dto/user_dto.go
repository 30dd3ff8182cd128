package dto

// ProfileResponse is the public profile payload: identity plus the user's
// comments joined with video titles, unfiltered.
type ProfileResponse struct {
	ID       int64                    `json:"id"`
	Username string                   `json:"username"`
	Avatar   *string                  `json:"avatar,omitempty"`
	Comments []ProfileCommentResponse `json:"comments"`
}

// AvatarResponse is returned after a successful avatar upload
type AvatarResponse struct {
	Avatar string `json:"avatar"`
}
