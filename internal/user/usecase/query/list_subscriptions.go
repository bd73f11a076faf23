package query

import (
	"fmt"

	"github.com/foodgram/foodgram-backend/internal/user/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

// ListSubscriptionsQuery lists the authors the acting user follows,
// ordered by username. Limit/offset come from the pagination collaborator.
type ListSubscriptionsQuery struct {
	UserID       uint
	Limit        int
	Offset       int
	RecipesLimit int // 0 means no truncation
}

// SubscriptionsPage is a page of enriched author profiles plus the total
// count the caller pages over.
type SubscriptionsPage struct {
	Authors []domain.ProfileWithRecipes `json:"authors"`
	Total   int64                       `json:"total"`
}

// ListSubscriptionsHandler handles the list subscriptions query
type ListSubscriptionsHandler struct {
	follows domain.FollowRepository
	recipes domain.AuthorRecipeProvider
}

// NewListSubscriptionsHandler creates a new list subscriptions handler
func NewListSubscriptionsHandler(follows domain.FollowRepository, recipes domain.AuthorRecipeProvider) *ListSubscriptionsHandler {
	return &ListSubscriptionsHandler{follows: follows, recipes: recipes}
}

// Handle executes the list subscriptions query
func (h *ListSubscriptionsHandler) Handle(q ListSubscriptionsQuery) (*SubscriptionsPage, error) {
	if q.UserID == 0 {
		return nil, apperr.ErrAuthRequired
	}
	if q.Limit <= 0 {
		q.Limit = 6
	}

	authors, err := h.follows.ListAuthors(q.UserID, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	total, err := h.follows.CountAuthors(q.UserID)
	if err != nil {
		return nil, err
	}

	page := &SubscriptionsPage{Authors: make([]domain.ProfileWithRecipes, 0, len(authors)), Total: total}
	for i := range authors {
		author := authors[i]
		recipes, err := h.recipes.ListByAuthor(author.ID, q.RecipesLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to load recipes for author %d: %w", author.ID, err)
		}
		count, err := h.recipes.CountByAuthor(author.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count recipes for author %d: %w", author.ID, err)
		}
		page.Authors = append(page.Authors, domain.NewProfileWithRecipes(&author, true, recipes, count))
	}
	return page, nil
}
