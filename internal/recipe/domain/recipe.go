package domain

import (
	"time"
)

// Recipe is the published entity. PubDate is server-assigned on create
// and never updated; the default listing order is newest first.
type Recipe struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AuthorID    uint      `json:"author_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:256;not null"`
	Image       string    `json:"image" gorm:"not null"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	CookingTime int       `json:"cooking_time" gorm:"not null"`
	PubDate     time.Time `json:"pub_date" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName specifies the table name
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient pairs a recipe with one ingredient and a quantity.
// A recipe cannot list the same ingredient twice, enforced by the
// composite unique index.
type RecipeIngredient struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	RecipeID     uint `json:"recipe_id" gorm:"not null;index:idx_recipe_ingredient,unique"`
	IngredientID uint `json:"ingredient_id" gorm:"not null;index:idx_recipe_ingredient,unique"`
	Amount       int  `json:"amount" gorm:"not null"`
}

// TableName specifies the table name
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// IngredientLine is a validated (ingredient, amount) pair ready to be
// persisted for a recipe.
type IngredientLine struct {
	IngredientID uint
	Amount       int
}

// IngredientLineView is the resolved read shape of one line.
type IngredientLineView struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// ListFilter narrows the recipe listing. Favorited/InCart are
// viewer-relative: with an anonymous viewer a true filter yields an
// empty set, never an error.
type ListFilter struct {
	ViewerID  uint
	AuthorID  uint
	Favorited *bool
	InCart    *bool
	Limit     int
	Offset    int
}

// ShoppingListItem is one aggregated (ingredient, unit) group.
type ShoppingListItem struct {
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Total int    `json:"total"`
}

// CartRecipe names one recipe contributing to a shopping cart.
type CartRecipe struct {
	Name           string `json:"name"`
	AuthorUsername string `json:"author_username"`
}

// RecipeRepository defines the contract for recipe data access. Create,
// Update and Delete are transactional: a reader never observes a recipe
// with a partially written line set, and a failed line insert rolls the
// recipe write back.
type RecipeRepository interface {
	// Create persists the recipe and bulk-inserts its lines atomically.
	Create(recipe *Recipe, lines []IngredientLine) error
	// Update persists scalar changes and wholesale-replaces the line set:
	// all existing lines are deleted and the new set inserted, in one
	// transaction.
	Update(recipe *Recipe, lines []IngredientLine) error
	// Delete cascades to lines, favorites and cart entries explicitly.
	Delete(id uint) error
	FindByID(id uint) (*Recipe, error)
	Lines(recipeID uint) ([]IngredientLineView, error)
	// LinesByRecipes loads the lines of all given recipes in one query,
	// grouped by recipe id. Listings use it to avoid per-row loads.
	LinesByRecipes(recipeIDs []uint) (map[uint][]IngredientLineView, error)
	List(f ListFilter) ([]Recipe, error)
	CountFiltered(f ListFilter) (int64, error)
	// ShoppingList groups all lines of the user's cart recipes by
	// (ingredient name, unit) and sums amounts, ordered by name.
	ShoppingList(userID uint) ([]ShoppingListItem, error)
	// CartRecipes lists (recipe name, author username) pairs for the
	// user's cart, ordered by recipe name.
	CartRecipes(userID uint) ([]CartRecipe, error)
}

// IngredientResolver checks referenced ingredient ids against the
// catalog. Implemented by the ingredient repository.
type IngredientResolver interface {
	ExistingIDs(ids []uint) (map[uint]bool, error)
}
