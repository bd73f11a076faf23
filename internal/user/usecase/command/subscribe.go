package command

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/foodgram/foodgram-backend/internal/user/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

// Client-facing messages, kept verbatim from the original API.
const (
	MsgSelfSubscribe    = "Нельзя подписаться на самого себя."
	MsgAlreadyFollowing = "Вы уже подписаны на этого пользователя."
	MsgNotFollowing     = "Вы не были подписаны на этого пользователя."
)

// SubscribeCommand represents the command to follow an author
type SubscribeCommand struct {
	UserID       uint
	AuthorID     uint
	RecipesLimit int // 0 means no truncation
}

// SubscribeHandler handles the subscribe command
type SubscribeHandler struct {
	users   domain.UserRepository
	follows domain.FollowRepository
	recipes domain.AuthorRecipeProvider
}

// NewSubscribeHandler creates a new subscribe handler
func NewSubscribeHandler(users domain.UserRepository, follows domain.FollowRepository, recipes domain.AuthorRecipeProvider) *SubscribeHandler {
	return &SubscribeHandler{users: users, follows: follows, recipes: recipes}
}

// Handle executes the subscribe command. Self-follow is rejected before
// any uniqueness check; duplicates are detected by the unique constraint
// so a concurrent double-subscribe cannot slip through.
func (h *SubscribeHandler) Handle(cmd SubscribeCommand) (*domain.ProfileWithRecipes, error) {
	if cmd.UserID == 0 {
		return nil, apperr.ErrAuthRequired
	}
	if cmd.UserID == cmd.AuthorID {
		return nil, apperr.SelfReference(MsgSelfSubscribe)
	}

	author, err := h.users.FindByID(cmd.AuthorID)
	if err != nil {
		return nil, err
	}

	if err := h.follows.Create(cmd.UserID, cmd.AuthorID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(MsgAlreadyFollowing)
		}
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}

	recipes, err := h.recipes.ListByAuthor(author.ID, cmd.RecipesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load author recipes: %w", err)
	}
	count, err := h.recipes.CountByAuthor(author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count author recipes: %w", err)
	}

	profile := domain.NewProfileWithRecipes(author, true, recipes, count)
	return &profile, nil
}
