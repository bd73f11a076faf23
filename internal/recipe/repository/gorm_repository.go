package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	userdomain "github.com/foodgram/foodgram-backend/internal/user/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

// GormRecipeRepository implements RecipeRepository using GORM. It also
// serves as the AuthorRecipeProvider for the user domain.
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GORM recipe repository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

func (r *GormRecipeRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Recipe{},
		&domain.RecipeIngredient{},
		&domain.Favorite{},
		&domain.ShoppingCart{},
	)
}

// Create persists the recipe and its lines in one transaction. A failed
// line insert rolls the recipe row back.
func (r *GormRecipeRepository) Create(recipe *domain.Recipe, lines []domain.IngredientLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}
		return insertLines(tx, recipe.ID, lines)
	})
}

// Update persists scalar fields and wholesale-replaces the line set.
// PubDate is deliberately excluded from the update.
func (r *GormRecipeRepository) Update(recipe *domain.Recipe, lines []domain.IngredientLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Recipe{}).
			Where("id = ?", recipe.ID).
			Select("name", "image", "text", "cooking_time", "updated_at").
			Updates(recipe)
		if res.Error != nil {
			return fmt.Errorf("failed to update recipe: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("recipe")
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&domain.RecipeIngredient{}).Error; err != nil {
			return fmt.Errorf("failed to clear ingredient lines: %w", err)
		}
		return insertLines(tx, recipe.ID, lines)
	})
}

func insertLines(tx *gorm.DB, recipeID uint, lines []domain.IngredientLine) error {
	rows := make([]domain.RecipeIngredient, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, domain.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: line.IngredientID,
			Amount:       line.Amount,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert ingredient lines: %w", err)
	}
	return nil
}

// Delete removes the recipe and explicitly cascades to its lines,
// favorites and cart entries in one transaction.
func (r *GormRecipeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.RecipeIngredient{}).Error; err != nil {
			return fmt.Errorf("failed to delete ingredient lines: %w", err)
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return fmt.Errorf("failed to delete favorites: %w", err)
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.ShoppingCart{}).Error; err != nil {
			return fmt.Errorf("failed to delete cart entries: %w", err)
		}
		res := tx.Delete(&domain.Recipe{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete recipe: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("recipe")
		}
		return nil
	})
}

// FindByID retrieves a recipe by ID
func (r *GormRecipeRepository) FindByID(id uint) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := r.db.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("recipe")
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}
	return &recipe, nil
}

// Lines returns the resolved ingredient lines of a recipe
func (r *GormRecipeRepository) Lines(recipeID uint) ([]domain.IngredientLineView, error) {
	var lines []domain.IngredientLineView
	err := r.db.Table("recipe_ingredients").
		Select("ingredients.id AS id, ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, recipe_ingredients.amount AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Order("ingredients.name").
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredient lines: %w", err)
	}
	return lines, nil
}

// LinesByRecipes loads the lines of all given recipes in one query,
// grouped by recipe id
func (r *GormRecipeRepository) LinesByRecipes(recipeIDs []uint) (map[uint][]domain.IngredientLineView, error) {
	grouped := make(map[uint][]domain.IngredientLineView, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return grouped, nil
	}
	var rows []struct {
		RecipeID        uint
		ID              uint
		Name            string
		MeasurementUnit string
		Amount          int
	}
	err := r.db.Table("recipe_ingredients").
		Select("recipe_ingredients.recipe_id AS recipe_id, ingredients.id AS id, ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, recipe_ingredients.amount AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id IN ?", recipeIDs).
		Order("ingredients.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredient lines: %w", err)
	}
	for _, row := range rows {
		grouped[row.RecipeID] = append(grouped[row.RecipeID], domain.IngredientLineView{
			ID:              row.ID,
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
			Amount:          row.Amount,
		})
	}
	return grouped, nil
}

func (r *GormRecipeRepository) filtered(f domain.ListFilter) *gorm.DB {
	q := r.db.Model(&domain.Recipe{})
	if f.AuthorID != 0 {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	q = applyToggleFilter(q, f.ViewerID, f.Favorited, "favorites")
	q = applyToggleFilter(q, f.ViewerID, f.InCart, "shopping_carts")
	return q
}

// applyToggleFilter narrows by presence in the given toggle table.
// Anonymous viewers asking for "mine" get an empty set.
func applyToggleFilter(q *gorm.DB, viewerID uint, want *bool, table string) *gorm.DB {
	if want == nil {
		return q
	}
	if viewerID == 0 {
		if *want {
			return q.Where("1 = 0")
		}
		return q
	}
	sub := fmt.Sprintf("SELECT recipe_id FROM %s WHERE user_id = ?", table)
	if *want {
		return q.Where("recipes.id IN ("+sub+")", viewerID)
	}
	return q.Where("recipes.id NOT IN ("+sub+")", viewerID)
}

// List returns a page of recipes, newest first
func (r *GormRecipeRepository) List(f domain.ListFilter) ([]domain.Recipe, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 6
	}
	var recipes []domain.Recipe
	err := r.filtered(f).
		Order("pub_date DESC").
		Limit(limit).Offset(f.Offset).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// CountFiltered returns the total matching the filter
func (r *GormRecipeRepository) CountFiltered(f domain.ListFilter) (int64, error) {
	var count int64
	if err := r.filtered(f).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

// ShoppingList aggregates the lines of all cart recipes by (name, unit),
// summing amounts, ordered by ingredient name.
func (r *GormRecipeRepository) ShoppingList(userID uint) ([]domain.ShoppingListItem, error) {
	var items []domain.ShoppingListItem
	err := r.db.Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate shopping list: %w", err)
	}
	return items, nil
}

// CartRecipes lists the (recipe, author) pairs in the user's cart,
// ordered by recipe name.
func (r *GormRecipeRepository) CartRecipes(userID uint) ([]domain.CartRecipe, error) {
	var recipes []domain.CartRecipe
	err := r.db.Table("recipes").
		Select("recipes.name AS name, users.username AS author_username").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipes.id").
		Joins("JOIN users ON users.id = recipes.author_id").
		Where("shopping_carts.user_id = ?", userID).
		Order("recipes.name").
		Scan(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cart recipes: %w", err)
	}
	return recipes, nil
}

// ListByAuthor implements the user domain's AuthorRecipeProvider.
// A non-positive limit means no truncation.
func (r *GormRecipeRepository) ListByAuthor(authorID uint, limit int) ([]userdomain.AuthorRecipe, error) {
	q := r.db.Table("recipes").
		Select("id, name, image, cooking_time").
		Where("author_id = ?", authorID).
		Order("pub_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recipes []userdomain.AuthorRecipe
	if err := q.Scan(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list author recipes: %w", err)
	}
	return recipes, nil
}

// CountByAuthor implements the user domain's AuthorRecipeProvider
func (r *GormRecipeRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
