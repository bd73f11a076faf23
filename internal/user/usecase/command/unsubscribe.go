package command

import (
	"github.com/foodgram/foodgram-backend/internal/user/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

// UnsubscribeCommand represents the command to unfollow an author
type UnsubscribeCommand struct {
	UserID   uint
	AuthorID uint
}

// UnsubscribeHandler handles the unsubscribe command
type UnsubscribeHandler struct {
	users   domain.UserRepository
	follows domain.FollowRepository
}

// NewUnsubscribeHandler creates a new unsubscribe handler
func NewUnsubscribeHandler(users domain.UserRepository, follows domain.FollowRepository) *UnsubscribeHandler {
	return &UnsubscribeHandler{users: users, follows: follows}
}

// Handle executes the unsubscribe command
func (h *UnsubscribeHandler) Handle(cmd UnsubscribeCommand) error {
	if cmd.UserID == 0 {
		return apperr.ErrAuthRequired
	}
	if cmd.UserID == cmd.AuthorID {
		return apperr.SelfReference(MsgSelfSubscribe)
	}

	if _, err := h.users.FindByID(cmd.AuthorID); err != nil {
		return err
	}

	deleted, err := h.follows.Delete(cmd.UserID, cmd.AuthorID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.Conflict(MsgNotFollowing)
	}
	return nil
}
