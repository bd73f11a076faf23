package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/foodgram/foodgram-backend/internal/ingredient/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Ingredient{}))
	return db
}

func TestImportNormalizesAndSkipsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormIngredientRepository(db)

	added, skipped, err := repo.Import([]domain.Ingredient{
		{Name: "  Молоко ", MeasurementUnit: "МЛ"},
		{Name: "Мука", MeasurementUnit: "г"},
		{Name: "молоко", MeasurementUnit: "мл"}, // same identity after normalization
		{Name: "  ", MeasurementUnit: "г"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, added)
	require.Equal(t, 2, skipped)

	items, err := repo.SearchByPrefix("")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "молоко", items[0].Name)
	require.Equal(t, "мл", items[0].MeasurementUnit)
	require.Equal(t, "мука", items[1].Name)
}

func TestImportIsRerunnable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormIngredientRepository(db)

	catalog := []domain.Ingredient{
		{Name: "молоко", MeasurementUnit: "мл"},
		{Name: "мука", MeasurementUnit: "г"},
	}
	added, skipped, err := repo.Import(catalog)
	require.NoError(t, err)
	require.Equal(t, 2, added)
	require.Zero(t, skipped)

	added, skipped, err = repo.Import(catalog)
	require.NoError(t, err)
	require.Zero(t, added)
	require.Equal(t, 2, skipped)
}

func TestSameNameDifferentUnitIsDistinct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormIngredientRepository(db)

	added, _, err := repo.Import([]domain.Ingredient{
		{Name: "мука", MeasurementUnit: "г"},
		{Name: "мука", MeasurementUnit: "кг"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, added)
}

func TestSearchByPrefix(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormIngredientRepository(db)

	_, _, err := repo.Import([]domain.Ingredient{
		{Name: "молоко", MeasurementUnit: "мл"},
		{Name: "молотый перец", MeasurementUnit: "г"},
		{Name: "мука", MeasurementUnit: "г"},
	})
	require.NoError(t, err)

	// The query casing does not matter; results come ordered by name
	items, err := repo.SearchByPrefix("Мол")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "молоко", items[0].Name)
	require.Equal(t, "молотый перец", items[1].Name)

	items, err = repo.SearchByPrefix("перец")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormIngredientRepository(db)

	_, _, err := repo.Import([]domain.Ingredient{
		{Name: "молоко", MeasurementUnit: "мл"},
		{Name: "мука", MeasurementUnit: "г"},
		{Name: "сливки 10%", MeasurementUnit: "мл"},
	})
	require.NoError(t, err)

	// "%" and "_" are data, not patterns
	items, err := repo.SearchByPrefix("%")
	require.NoError(t, err)
	require.Empty(t, items)

	items, err = repo.SearchByPrefix("м_ка")
	require.NoError(t, err)
	require.Empty(t, items)

	items, err = repo.SearchByPrefix("сливки 10%")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "сливки 10%", items[0].Name)
}

func TestExistingIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormIngredientRepository(db)

	milk := &domain.Ingredient{Name: "молоко", MeasurementUnit: "мл"}
	require.NoError(t, db.Create(milk).Error)

	existing, err := repo.ExistingIDs([]uint{milk.ID, 999})
	require.NoError(t, err)
	require.True(t, existing[milk.ID])
	require.False(t, existing[999])

	existing, err = repo.ExistingIDs(nil)
	require.NoError(t, err)
	require.Empty(t, existing)
}

func TestFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormIngredientRepository(db)

	milk := &domain.Ingredient{Name: "молоко", MeasurementUnit: "мл"}
	require.NoError(t, db.Create(milk).Error)

	got, err := repo.FindByID(milk.ID)
	require.NoError(t, err)
	require.Equal(t, "молоко", got.Name)

	_, err = repo.FindByID(404)
	require.True(t, apperr.IsNotFound(err))
}
