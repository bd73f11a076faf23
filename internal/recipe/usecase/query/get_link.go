package query

import (
	"fmt"

	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
)

// GetLinkQuery resolves the short redirect path of a recipe
type GetLinkQuery struct {
	RecipeID uint
}

// GetLinkHandler handles the short link query
type GetLinkHandler struct {
	recipes domain.RecipeRepository
}

// NewGetLinkHandler creates a new get link handler
func NewGetLinkHandler(recipes domain.RecipeRepository) *GetLinkHandler {
	return &GetLinkHandler{recipes: recipes}
}

// Handle returns the short redirect path, verifying the recipe exists
func (h *GetLinkHandler) Handle(q GetLinkQuery) (string, error) {
	recipe, err := h.recipes.FindByID(q.RecipeID)
	if err != nil {
		return "", err
	}
	return ShortLinkPath(recipe.ID), nil
}

// ShortLinkPath is the site-relative short redirect path for a recipe.
func ShortLinkPath(id uint) string {
	return fmt.Sprintf("/s/%d/", id)
}

// RedirectTarget is where the short link resolves to.
func RedirectTarget(id uint) string {
	return fmt.Sprintf("/recipes/%d/", id)
}
