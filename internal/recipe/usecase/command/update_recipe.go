package command

import (
	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

// UpdateRecipeCommand represents the command to update a recipe. Partial
// marks a PATCH-style call, which still requires every field except the
// image to be resupplied.
type UpdateRecipeCommand struct {
	ActorID  uint
	RecipeID uint
	Payload  RecipePayload
	Partial  bool
}

// UpdateRecipeHandler handles recipe updates
type UpdateRecipeHandler struct {
	repo        domain.RecipeRepository
	ingredients domain.IngredientResolver
}

// NewUpdateRecipeHandler creates a new update recipe handler
func NewUpdateRecipeHandler(repo domain.RecipeRepository, ingredients domain.IngredientResolver) *UpdateRecipeHandler {
	return &UpdateRecipeHandler{repo: repo, ingredients: ingredients}
}

// Handle validates the payload, then replaces the recipe's scalar
// fields and its entire line set in one transaction. Only the author
// may update; pub_date never changes.
func (h *UpdateRecipeHandler) Handle(cmd UpdateRecipeCommand) (*domain.Recipe, error) {
	if cmd.ActorID == 0 {
		return nil, apperr.ErrAuthRequired
	}

	existing, err := h.repo.FindByID(cmd.RecipeID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != cmd.ActorID {
		return nil, apperr.ErrForbidden
	}

	mode := ModeReplace
	if cmd.Partial {
		mode = ModePartial
	}
	lines, err := cmd.Payload.validate(mode, h.ingredients)
	if err != nil {
		return nil, err
	}

	updated := &domain.Recipe{
		ID:          existing.ID,
		AuthorID:    existing.AuthorID,
		Name:        *cmd.Payload.Name,
		Text:        *cmd.Payload.Text,
		CookingTime: *cmd.Payload.CookingTime,
		PubDate:     existing.PubDate,
		Image:       existing.Image,
	}
	if cmd.Payload.Image != nil {
		updated.Image = *cmd.Payload.Image
	}

	if err := h.repo.Update(updated, lines); err != nil {
		return nil, err
	}
	return updated, nil
}
