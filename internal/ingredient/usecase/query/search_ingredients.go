package query

import (
	"github.com/foodgram/foodgram-backend/internal/ingredient/domain"
)

// SearchIngredientsQuery represents the prefix search over the catalog
type SearchIngredientsQuery struct {
	NamePrefix string
}

// SearchIngredientsHandler handles ingredient prefix search
type SearchIngredientsHandler struct {
	repo domain.IngredientRepository
}

// NewSearchIngredientsHandler creates a new search handler
func NewSearchIngredientsHandler(repo domain.IngredientRepository) *SearchIngredientsHandler {
	return &SearchIngredientsHandler{repo: repo}
}

// Handle executes the search query
func (h *SearchIngredientsHandler) Handle(q SearchIngredientsQuery) ([]domain.Ingredient, error) {
	return h.repo.SearchByPrefix(q.NamePrefix)
}
