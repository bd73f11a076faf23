package command

import (
	"errors"

	"gorm.io/gorm"

	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

const (
	MsgAlreadyFavorited = "Рецепт уже в избранном."
	MsgNotFavorited     = "Рецепта нет в избранном."
)

// ToggleCommand is the shared input of favorite and cart toggles
type ToggleCommand struct {
	UserID   uint
	RecipeID uint
}

// AddFavoriteHandler handles adding a recipe to favorites
type AddFavoriteHandler struct {
	recipes   domain.RecipeRepository
	favorites domain.ToggleRepository
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(recipes domain.RecipeRepository, favorites domain.ToggleRepository) *AddFavoriteHandler {
	return &AddFavoriteHandler{recipes: recipes, favorites: favorites}
}

// Handle inserts the (user, recipe) pair and returns the short recipe
// shape. The unique constraint, not a prior read, detects duplicates.
func (h *AddFavoriteHandler) Handle(cmd ToggleCommand) (*domain.RecipeShort, error) {
	if cmd.UserID == 0 {
		return nil, apperr.ErrAuthRequired
	}
	recipe, err := h.recipes.FindByID(cmd.RecipeID)
	if err != nil {
		return nil, err
	}
	if err := h.favorites.Add(cmd.UserID, cmd.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(MsgAlreadyFavorited)
		}
		return nil, err
	}
	short := domain.NewRecipeShort(recipe)
	return &short, nil
}

// RemoveFavoriteHandler handles removing a recipe from favorites
type RemoveFavoriteHandler struct {
	recipes   domain.RecipeRepository
	favorites domain.ToggleRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(recipes domain.RecipeRepository, favorites domain.ToggleRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{recipes: recipes, favorites: favorites}
}

// Handle deletes the pair; absence is a conflict, not a server error
func (h *RemoveFavoriteHandler) Handle(cmd ToggleCommand) error {
	if cmd.UserID == 0 {
		return apperr.ErrAuthRequired
	}
	if _, err := h.recipes.FindByID(cmd.RecipeID); err != nil {
		return err
	}
	removed, err := h.favorites.Remove(cmd.UserID, cmd.RecipeID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.Conflict(MsgNotFavorited)
	}
	return nil
}
