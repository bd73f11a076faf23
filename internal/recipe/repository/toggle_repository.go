package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
)

// GormFavoriteRepository implements ToggleRepository over the favorites
// table.
type GormFavoriteRepository struct {
	toggle
}

// NewGormFavoriteRepository creates a favorite toggle repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{toggle{db: db, model: func() interface{} { return &domain.Favorite{} }, newRow: func(u, r uint) interface{} {
		return &domain.Favorite{UserID: u, RecipeID: r}
	}}}
}

// GormShoppingCartRepository implements ToggleRepository over the
// shopping_carts table.
type GormShoppingCartRepository struct {
	toggle
}

// NewGormShoppingCartRepository creates a cart toggle repository
func NewGormShoppingCartRepository(db *gorm.DB) *GormShoppingCartRepository {
	return &GormShoppingCartRepository{toggle{db: db, model: func() interface{} { return &domain.ShoppingCart{} }, newRow: func(u, r uint) interface{} {
		return &domain.ShoppingCart{UserID: u, RecipeID: r}
	}}}
}

// toggle holds the shared presence/absence mechanics. The unique pair
// index is authoritative: Add never pre-checks existence.
type toggle struct {
	db     *gorm.DB
	model  func() interface{}
	newRow func(userID, recipeID uint) interface{}
}

// Add inserts the pair; duplicates surface as gorm.ErrDuplicatedKey
func (t *toggle) Add(userID, recipeID uint) error {
	return t.db.Create(t.newRow(userID, recipeID)).Error
}

// Remove deletes the pair and reports whether a row existed
func (t *toggle) Remove(userID, recipeID uint) (bool, error) {
	res := t.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(t.model())
	if res.Error != nil {
		return false, fmt.Errorf("failed to remove entry: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Exists reports whether the pair is present
func (t *toggle) Exists(userID, recipeID uint) (bool, error) {
	var cnt int64
	if err := t.db.Model(t.model()).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&cnt).Error; err != nil {
		return false, fmt.Errorf("failed to check entry: %w", err)
	}
	return cnt > 0, nil
}

// MarkedIDs returns which of the given recipe ids the user has marked
func (t *toggle) MarkedIDs(userID uint, recipeIDs []uint) (map[uint]bool, error) {
	marked := make(map[uint]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return marked, nil
	}
	var ids []uint
	if err := t.db.Model(t.model()).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load marked ids: %w", err)
	}
	for _, id := range ids {
		marked[id] = true
	}
	return marked, nil
}
