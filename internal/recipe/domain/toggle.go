package domain

import "time"

// Favorite marks a recipe as favorited by a user. Presence/absence is
// the whole state; the unique pair index guards double-toggles.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index:idx_favorite_pair,unique"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;index:idx_favorite_pair,unique"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}

// ShoppingCart puts a recipe on a user's shopping list. Independent of
// Favorite, same toggle semantics.
type ShoppingCart struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index:idx_cart_pair,unique"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;index:idx_cart_pair,unique"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (ShoppingCart) TableName() string {
	return "shopping_carts"
}

// ToggleRepository is the contract shared by favorites and cart entries.
// Add surfaces a duplicate pair as gorm.ErrDuplicatedKey via the unique
// constraint; Remove reports whether a row existed.
type ToggleRepository interface {
	Add(userID, recipeID uint) error
	Remove(userID, recipeID uint) (bool, error)
	Exists(userID, recipeID uint) (bool, error)
	// MarkedIDs returns which of the given recipe ids are present for
	// the user, for bulk flag computation on listings.
	MarkedIDs(userID uint, recipeIDs []uint) (map[uint]bool, error)
}
