package command

import (
	"github.com/foodgram/foodgram-backend/internal/user/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

const MsgAvatarRequired = "Это поле обязательно."

// SetAvatarCommand replaces the acting user's avatar reference. The
// reference is opaque; the asset store owns the content.
type SetAvatarCommand struct {
	UserID uint
	Avatar string
}

// SetAvatarHandler handles avatar updates
type SetAvatarHandler struct {
	users domain.UserRepository
}

// NewSetAvatarHandler creates a new set avatar handler
func NewSetAvatarHandler(users domain.UserRepository) *SetAvatarHandler {
	return &SetAvatarHandler{users: users}
}

// Handle executes the set avatar command
func (h *SetAvatarHandler) Handle(cmd SetAvatarCommand) error {
	if cmd.UserID == 0 {
		return apperr.ErrAuthRequired
	}
	if cmd.Avatar == "" {
		return apperr.NewValidation().Add("avatar", MsgAvatarRequired)
	}
	return h.users.UpdateAvatar(cmd.UserID, cmd.Avatar)
}

// DeleteAvatarCommand clears the acting user's avatar reference
type DeleteAvatarCommand struct {
	UserID uint
}

// DeleteAvatarHandler handles avatar removal
type DeleteAvatarHandler struct {
	users domain.UserRepository
}

// NewDeleteAvatarHandler creates a new delete avatar handler
func NewDeleteAvatarHandler(users domain.UserRepository) *DeleteAvatarHandler {
	return &DeleteAvatarHandler{users: users}
}

// Handle executes the delete avatar command
func (h *DeleteAvatarHandler) Handle(cmd DeleteAvatarCommand) error {
	if cmd.UserID == 0 {
		return apperr.ErrAuthRequired
	}
	return h.users.UpdateAvatar(cmd.UserID, "")
}
