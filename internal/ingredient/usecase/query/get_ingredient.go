package query

import (
	"github.com/foodgram/foodgram-backend/internal/ingredient/domain"
)

// GetIngredientQuery represents the query to get one catalog entry
type GetIngredientQuery struct {
	ID uint
}

// GetIngredientHandler handles get ingredient query
type GetIngredientHandler struct {
	repo domain.IngredientRepository
}

// NewGetIngredientHandler creates a new get ingredient handler
func NewGetIngredientHandler(repo domain.IngredientRepository) *GetIngredientHandler {
	return &GetIngredientHandler{repo: repo}
}

// Handle executes the get ingredient query
func (h *GetIngredientHandler) Handle(q GetIngredientQuery) (*domain.Ingredient, error) {
	return h.repo.FindByID(q.ID)
}
