package query

import (
	"github.com/foodgram/foodgram-backend/internal/user/domain"
)

// GetProfileQuery resolves a public profile relative to a viewer.
// ViewerID zero means anonymous: is_subscribed is false, never an error.
type GetProfileQuery struct {
	ViewerID uint
	UserID   uint
}

// GetProfileHandler handles the get profile query
type GetProfileHandler struct {
	users   domain.UserRepository
	follows domain.FollowRepository
}

// NewGetProfileHandler creates a new get profile handler
func NewGetProfileHandler(users domain.UserRepository, follows domain.FollowRepository) *GetProfileHandler {
	return &GetProfileHandler{users: users, follows: follows}
}

// Handle executes the get profile query
func (h *GetProfileHandler) Handle(q GetProfileQuery) (*domain.Profile, error) {
	user, err := h.users.FindByID(q.UserID)
	if err != nil {
		return nil, err
	}

	subscribed := false
	if q.ViewerID != 0 && q.ViewerID != q.UserID {
		subscribed, err = h.follows.Exists(q.ViewerID, q.UserID)
		if err != nil {
			return nil, err
		}
	}

	profile := domain.NewProfile(user, subscribed)
	return &profile, nil
}
