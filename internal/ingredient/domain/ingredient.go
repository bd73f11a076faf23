package domain

// Ingredient is a catalog entry. Identity is the (name, measurement_unit)
// pair; bulk import normalizes both to lowercase.
type Ingredient struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:128;not null;index:idx_ingredient_identity,unique"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:64;not null;index:idx_ingredient_identity,unique"`
}

// TableName specifies the table name
func (Ingredient) TableName() string {
	return "ingredients"
}

// IngredientRepository defines the contract for ingredient data access
type IngredientRepository interface {
	FindByID(id uint) (*Ingredient, error)
	FindByIDs(ids []uint) ([]Ingredient, error)
	// SearchByPrefix matches names case-insensitively, ordered by name.
	SearchByPrefix(prefix string) ([]Ingredient, error)
	// Import inserts entries skipping (name, unit) pairs that already
	// exist. Returns how many rows were added and skipped.
	Import(items []Ingredient) (added, skipped int, err error)
}
