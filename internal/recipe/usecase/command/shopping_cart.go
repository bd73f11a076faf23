package command

import (
	"errors"

	"gorm.io/gorm"

	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

const (
	MsgAlreadyInCart = "Рецепт уже в списке покупок."
	MsgNotInCart     = "Рецепта нет в списке покупок."
)

// AddToCartHandler handles adding a recipe to the shopping cart
type AddToCartHandler struct {
	recipes domain.RecipeRepository
	cart    domain.ToggleRepository
}

// NewAddToCartHandler creates a new add to cart handler
func NewAddToCartHandler(recipes domain.RecipeRepository, cart domain.ToggleRepository) *AddToCartHandler {
	return &AddToCartHandler{recipes: recipes, cart: cart}
}

// Handle inserts the (user, recipe) pair and returns the short recipe
// shape; the unique constraint detects duplicates.
func (h *AddToCartHandler) Handle(cmd ToggleCommand) (*domain.RecipeShort, error) {
	if cmd.UserID == 0 {
		return nil, apperr.ErrAuthRequired
	}
	recipe, err := h.recipes.FindByID(cmd.RecipeID)
	if err != nil {
		return nil, err
	}
	if err := h.cart.Add(cmd.UserID, cmd.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(MsgAlreadyInCart)
		}
		return nil, err
	}
	short := domain.NewRecipeShort(recipe)
	return &short, nil
}

// RemoveFromCartHandler handles removing a recipe from the cart
type RemoveFromCartHandler struct {
	recipes domain.RecipeRepository
	cart    domain.ToggleRepository
}

// NewRemoveFromCartHandler creates a new remove from cart handler
func NewRemoveFromCartHandler(recipes domain.RecipeRepository, cart domain.ToggleRepository) *RemoveFromCartHandler {
	return &RemoveFromCartHandler{recipes: recipes, cart: cart}
}

// Handle deletes the pair; absence is a conflict
func (h *RemoveFromCartHandler) Handle(cmd ToggleCommand) error {
	if cmd.UserID == 0 {
		return apperr.ErrAuthRequired
	}
	if _, err := h.recipes.FindByID(cmd.RecipeID); err != nil {
		return err
	}
	removed, err := h.cart.Remove(cmd.UserID, cmd.RecipeID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.Conflict(MsgNotInCart)
	}
	return nil
}
