package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestToggleAddDuplicateSurfacesConstraint(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	chef := seedUser(t, db, "chef")
	fan := seedUser(t, db, "fan")
	recipe := seedRecipe(t, repo, chef.ID, "Блины", time.Now(), nil)

	favorites := NewGormFavoriteRepository(db)
	require.NoError(t, favorites.Add(fan.ID, recipe.ID))
	require.ErrorIs(t, favorites.Add(fan.ID, recipe.ID), gorm.ErrDuplicatedKey)

	// The same pair in the other toggle table is unaffected
	cart := NewGormShoppingCartRepository(db)
	require.NoError(t, cart.Add(fan.ID, recipe.ID))
}

func TestToggleRemoveReportsPresence(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	chef := seedUser(t, db, "chef")
	fan := seedUser(t, db, "fan")
	recipe := seedRecipe(t, repo, chef.ID, "Блины", time.Now(), nil)

	cart := NewGormShoppingCartRepository(db)
	removed, err := cart.Remove(fan.ID, recipe.ID)
	require.NoError(t, err)
	require.False(t, removed)

	require.NoError(t, cart.Add(fan.ID, recipe.ID))
	removed, err = cart.Remove(fan.ID, recipe.ID)
	require.NoError(t, err)
	require.True(t, removed)

	exists, err := cart.Exists(fan.ID, recipe.ID)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestToggleMarkedIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	chef := seedUser(t, db, "chef")
	fan := seedUser(t, db, "fan")
	first := seedRecipe(t, repo, chef.ID, "a", time.Now(), nil)
	second := seedRecipe(t, repo, chef.ID, "b", time.Now(), nil)

	favorites := NewGormFavoriteRepository(db)
	require.NoError(t, favorites.Add(fan.ID, first.ID))

	marked, err := favorites.MarkedIDs(fan.ID, []uint{first.ID, second.ID})
	require.NoError(t, err)
	require.True(t, marked[first.ID])
	require.False(t, marked[second.ID])

	// Anonymous viewers mark nothing
	marked, err = favorites.MarkedIDs(0, []uint{first.ID})
	require.NoError(t, err)
	require.Empty(t, marked)
}
