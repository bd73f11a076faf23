package query

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

const (
	MsgEmptyShoppingList = "Ваш список покупок пуст, или в рецептах нет ингредиентов."

	// ShoppingListFilename is the fixed attachment name of the report.
	ShoppingListFilename = "shopping_list.txt"
)

// BuildShoppingListQuery renders the aggregated shopping list of the
// acting user as a plain-text report.
type BuildShoppingListQuery struct {
	UserID uint
}

// BuildShoppingListHandler handles the shopping list query
type BuildShoppingListHandler struct {
	recipes domain.RecipeRepository
	now     func() time.Time
}

// NewBuildShoppingListHandler creates a new shopping list handler
func NewBuildShoppingListHandler(recipes domain.RecipeRepository) *BuildShoppingListHandler {
	return &BuildShoppingListHandler{recipes: recipes, now: time.Now}
}

// Handle aggregates the cart and renders the report. An empty result is
// a conflict, not an empty document.
func (h *BuildShoppingListHandler) Handle(q BuildShoppingListQuery) (string, error) {
	if q.UserID == 0 {
		return "", apperr.ErrAuthRequired
	}

	items, err := h.recipes.ShoppingList(q.UserID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", apperr.Conflict(MsgEmptyShoppingList)
	}

	recipes, err := h.recipes.CartRecipes(q.UserID)
	if err != nil {
		return "", err
	}

	return RenderShoppingList(h.now(), items, recipes), nil
}

// RenderShoppingList produces the deterministic plain-text report: a
// dated header, the numbered product totals, then the numbered list of
// contributing recipes with their authors.
func RenderShoppingList(now time.Time, items []domain.ShoppingListItem, recipes []domain.CartRecipe) string {
	lines := []string{
		fmt.Sprintf("Список покупок Foodgram на %s:", now.Format("02.01.2006")),
		"\nПродукты:",
	}
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s (%s) — %d", i+1, capitalize(item.Name), item.Unit, item.Total))
	}

	lines = append(lines, "\nРецепты, для которых нужны эти продукты:")
	for i, r := range recipes {
		lines = append(lines, fmt.Sprintf("%d. %s — @%s", i+1, r.Name, r.AuthorUsername))
	}

	return strings.Join(lines, "\n")
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
