package domain

import (
	userdomain "github.com/foodgram/foodgram-backend/internal/user/domain"
)

// RecipeShort is the compact representation returned by the toggle
// endpoints and embedded in enriched author profiles.
type RecipeShort struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// RecipeDetail is the full read shape: resolved lines, the author's
// public profile, and the two viewer-relative flags.
type RecipeDetail struct {
	ID               uint                 `json:"id"`
	Author           userdomain.Profile   `json:"author"`
	Ingredients      []IngredientLineView `json:"ingredients"`
	IsFavorited      bool                 `json:"is_favorited"`
	IsInShoppingCart bool                 `json:"is_in_shopping_cart"`
	Name             string               `json:"name"`
	Image            string               `json:"image"`
	Text             string               `json:"text"`
	CookingTime      int                  `json:"cooking_time"`
}

// NewRecipeShort maps a recipe to its compact representation.
func NewRecipeShort(r *Recipe) RecipeShort {
	return RecipeShort{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

// NewRecipeDetail maps a recipe plus resolved collaborator data to the
// full read shape. Flags are computed by the caller relative to the
// viewer identity.
func NewRecipeDetail(r *Recipe, author userdomain.Profile, lines []IngredientLineView, favorited, inCart bool) RecipeDetail {
	if lines == nil {
		lines = []IngredientLineView{}
	}
	return RecipeDetail{
		ID:               r.ID,
		Author:           author,
		Ingredients:      lines,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
	}
}
