package query

import (
	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	userdomain "github.com/foodgram/foodgram-backend/internal/user/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

// ListRecipesQuery lists recipes newest-first with viewer-relative
// filters. Limit/offset come from the pagination collaborator.
type ListRecipesQuery struct {
	Filter domain.ListFilter
}

// RecipesPage is one page of recipe details plus the total the caller
// pages over.
type RecipesPage struct {
	Recipes []domain.RecipeDetail `json:"recipes"`
	Total   int64                 `json:"total"`
}

// ListRecipesHandler handles the list recipes query
type ListRecipesHandler struct {
	recipes   domain.RecipeRepository
	favorites domain.ToggleRepository
	cart      domain.ToggleRepository
	users     userdomain.UserRepository
	follows   userdomain.FollowRepository
}

// NewListRecipesHandler creates a new list recipes handler
func NewListRecipesHandler(
	recipes domain.RecipeRepository,
	favorites domain.ToggleRepository,
	cart domain.ToggleRepository,
	users userdomain.UserRepository,
	follows userdomain.FollowRepository,
) *ListRecipesHandler {
	return &ListRecipesHandler{recipes: recipes, favorites: favorites, cart: cart, users: users, follows: follows}
}

// Handle executes the list recipes query. Flags, lines and author
// profiles are each loaded in one query over the page's ids.
func (h *ListRecipesHandler) Handle(q ListRecipesQuery) (*RecipesPage, error) {
	recipes, err := h.recipes.List(q.Filter)
	if err != nil {
		return nil, err
	}
	total, err := h.recipes.CountFiltered(q.Filter)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(recipes))
	for i := range recipes {
		ids = append(ids, recipes[i].ID)
	}
	viewerID := q.Filter.ViewerID
	favorited, err := h.favorites.MarkedIDs(viewerID, ids)
	if err != nil {
		return nil, err
	}
	inCart, err := h.cart.MarkedIDs(viewerID, ids)
	if err != nil {
		return nil, err
	}

	lines, err := h.recipes.LinesByRecipes(ids)
	if err != nil {
		return nil, err
	}
	authorIDs := make([]uint, 0, len(recipes))
	seen := make(map[uint]bool, len(recipes))
	for i := range recipes {
		if !seen[recipes[i].AuthorID] {
			seen[recipes[i].AuthorID] = true
			authorIDs = append(authorIDs, recipes[i].AuthorID)
		}
	}
	authors, err := h.users.FindByIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	followed, err := h.follows.FollowedIDs(viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	page := &RecipesPage{Recipes: make([]domain.RecipeDetail, 0, len(recipes)), Total: total}
	for i := range recipes {
		recipe := &recipes[i]
		author, ok := authors[recipe.AuthorID]
		if !ok {
			return nil, apperr.NotFound("user")
		}
		page.Recipes = append(page.Recipes, domain.NewRecipeDetail(
			recipe,
			userdomain.NewProfile(&author, followed[recipe.AuthorID]),
			lines[recipe.ID],
			favorited[recipe.ID],
			inCart[recipe.ID],
		))
	}
	return page, nil
}
