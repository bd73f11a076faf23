package query

import (
	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	userdomain "github.com/foodgram/foodgram-backend/internal/user/domain"
)

// GetRecipeQuery resolves the full recipe shape relative to a viewer.
// ViewerID zero means anonymous: both flags are false, never an error.
type GetRecipeQuery struct {
	ViewerID uint
	RecipeID uint
}

// GetRecipeHandler handles the get recipe query
type GetRecipeHandler struct {
	recipes   domain.RecipeRepository
	favorites domain.ToggleRepository
	cart      domain.ToggleRepository
	users     userdomain.UserRepository
	follows   userdomain.FollowRepository
}

// NewGetRecipeHandler creates a new get recipe handler
func NewGetRecipeHandler(
	recipes domain.RecipeRepository,
	favorites domain.ToggleRepository,
	cart domain.ToggleRepository,
	users userdomain.UserRepository,
	follows userdomain.FollowRepository,
) *GetRecipeHandler {
	return &GetRecipeHandler{recipes: recipes, favorites: favorites, cart: cart, users: users, follows: follows}
}

// Handle executes the get recipe query
func (h *GetRecipeHandler) Handle(q GetRecipeQuery) (*domain.RecipeDetail, error) {
	recipe, err := h.recipes.FindByID(q.RecipeID)
	if err != nil {
		return nil, err
	}
	detail, err := h.shape(recipe, q.ViewerID)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// shape assembles the detail view for one recipe.
func (h *GetRecipeHandler) shape(recipe *domain.Recipe, viewerID uint) (*domain.RecipeDetail, error) {
	lines, err := h.recipes.Lines(recipe.ID)
	if err != nil {
		return nil, err
	}

	author, err := h.users.FindByID(recipe.AuthorID)
	if err != nil {
		return nil, err
	}

	subscribed := false
	favorited := false
	inCart := false
	if viewerID != 0 {
		if viewerID != author.ID {
			subscribed, err = h.follows.Exists(viewerID, author.ID)
			if err != nil {
				return nil, err
			}
		}
		favorited, err = h.favorites.Exists(viewerID, recipe.ID)
		if err != nil {
			return nil, err
		}
		inCart, err = h.cart.Exists(viewerID, recipe.ID)
		if err != nil {
			return nil, err
		}
	}

	detail := domain.NewRecipeDetail(recipe, userdomain.NewProfile(author, subscribed), lines, favorited, inCart)
	return &detail, nil
}
