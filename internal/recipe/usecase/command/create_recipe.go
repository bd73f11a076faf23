package command

import (
	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

// CreateRecipeCommand represents the command to publish a new recipe
type CreateRecipeCommand struct {
	AuthorID uint
	Payload  RecipePayload
}

// CreateRecipeHandler handles recipe creation
type CreateRecipeHandler struct {
	repo        domain.RecipeRepository
	ingredients domain.IngredientResolver
}

// NewCreateRecipeHandler creates a new create recipe handler
func NewCreateRecipeHandler(repo domain.RecipeRepository, ingredients domain.IngredientResolver) *CreateRecipeHandler {
	return &CreateRecipeHandler{repo: repo, ingredients: ingredients}
}

// Handle validates the payload and persists the recipe together with
// its ingredient lines in one transaction.
func (h *CreateRecipeHandler) Handle(cmd CreateRecipeCommand) (*domain.Recipe, error) {
	if cmd.AuthorID == 0 {
		return nil, apperr.ErrAuthRequired
	}

	lines, err := cmd.Payload.validate(ModeCreate, h.ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		AuthorID:    cmd.AuthorID,
		Name:        *cmd.Payload.Name,
		Image:       *cmd.Payload.Image,
		Text:        *cmd.Payload.Text,
		CookingTime: *cmd.Payload.CookingTime,
	}

	if err := h.repo.Create(recipe, lines); err != nil {
		return nil, err
	}
	return recipe, nil
}
