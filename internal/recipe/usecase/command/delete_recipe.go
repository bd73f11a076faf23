package command

import (
	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

// DeleteRecipeCommand represents the command to delete a recipe
type DeleteRecipeCommand struct {
	ActorID  uint
	RecipeID uint
}

// DeleteRecipeHandler handles recipe deletion
type DeleteRecipeHandler struct {
	repo domain.RecipeRepository
}

// NewDeleteRecipeHandler creates a new delete recipe handler
func NewDeleteRecipeHandler(repo domain.RecipeRepository) *DeleteRecipeHandler {
	return &DeleteRecipeHandler{repo: repo}
}

// Handle deletes the recipe with an explicit transactional cascade to
// its lines, favorites and cart entries. Only the author may delete.
func (h *DeleteRecipeHandler) Handle(cmd DeleteRecipeCommand) error {
	if cmd.ActorID == 0 {
		return apperr.ErrAuthRequired
	}

	existing, err := h.repo.FindByID(cmd.RecipeID)
	if err != nil {
		return err
	}
	if existing.AuthorID != cmd.ActorID {
		return apperr.ErrForbidden
	}

	return h.repo.Delete(cmd.RecipeID)
}
