package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foodgram/foodgram-backend/internal/ingredient/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

// GormIngredientRepository implements IngredientRepository using GORM
type GormIngredientRepository struct {
	db *gorm.DB
}

// NewGormIngredientRepository creates a new GORM ingredient repository
func NewGormIngredientRepository(db *gorm.DB) *GormIngredientRepository {
	return &GormIngredientRepository{db: db}
}

func (r *GormIngredientRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Ingredient{})
}

// FindByID retrieves an ingredient by ID
func (r *GormIngredientRepository) FindByID(id uint) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	if err := r.db.First(&ing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("ingredient")
		}
		return nil, fmt.Errorf("failed to find ingredient: %w", err)
	}
	return &ing, nil
}

// FindByIDs retrieves all ingredients matching the given ids
func (r *GormIngredientRepository) FindByIDs(ids []uint) ([]domain.Ingredient, error) {
	var ings []domain.Ingredient
	if len(ids) == 0 {
		return ings, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&ings).Error; err != nil {
		return nil, fmt.Errorf("failed to find ingredients: %w", err)
	}
	return ings, nil
}

// ExistingIDs reports which of the given ids are present in the catalog.
// Serves the recipe domain's payload validation.
func (r *GormIngredientRepository) ExistingIDs(ids []uint) (map[uint]bool, error) {
	existing := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}
	var found []uint
	if err := r.db.Model(&domain.Ingredient{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, fmt.Errorf("failed to check ingredient ids: %w", err)
	}
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

// likeEscaper neutralizes LIKE metacharacters so user input matches
// literally. Backslash goes first.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchByPrefix matches ingredient names case-insensitively by prefix,
// ordered by name. Catalog names are stored lowercase by the importer, so
// lowering the query side is enough for Unicode names as well.
func (r *GormIngredientRepository) SearchByPrefix(prefix string) ([]domain.Ingredient, error) {
	q := r.db.Model(&domain.Ingredient{}).Order("name")
	if prefix != "" {
		pattern := likeEscaper.Replace(strings.ToLower(prefix)) + "%"
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}
	var ings []domain.Ingredient
	if err := q.Find(&ings).Error; err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}
	return ings, nil
}

// Import inserts entries, normalizing name and unit to trimmed lowercase.
// Existing (name, unit) pairs are skipped via the unique index.
func (r *GormIngredientRepository) Import(items []domain.Ingredient) (int, int, error) {
	added, skipped := 0, 0
	for _, item := range items {
		ing := domain.Ingredient{
			Name:            strings.ToLower(strings.TrimSpace(item.Name)),
			MeasurementUnit: strings.ToLower(strings.TrimSpace(item.MeasurementUnit)),
		}
		if ing.Name == "" || ing.MeasurementUnit == "" {
			skipped++
			continue
		}
		res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&ing)
		if res.Error != nil {
			return added, skipped, fmt.Errorf("failed to import %q: %w", ing.Name, res.Error)
		}
		if res.RowsAffected > 0 {
			added++
		} else {
			skipped++
		}
	}
	return added, skipped, nil
}
