package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	ingredientdomain "github.com/foodgram/foodgram-backend/internal/ingredient/domain"
	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	userdomain "github.com/foodgram/foodgram-backend/internal/user/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userdomain.User{},
		&userdomain.Follow{},
		&ingredientdomain.Ingredient{},
		&domain.Recipe{},
		&domain.RecipeIngredient{},
		&domain.Favorite{},
		&domain.ShoppingCart{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *userdomain.User {
	t.Helper()
	u := &userdomain.User{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedIngredient(t *testing.T, db *gorm.DB, name, unit string) *ingredientdomain.Ingredient {
	t.Helper()
	ing := &ingredientdomain.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ing).Error)
	return ing
}

func seedRecipe(t *testing.T, repo *GormRecipeRepository, authorID uint, name string, pubDate time.Time, lines []domain.IngredientLine) *domain.Recipe {
	t.Helper()
	recipe := &domain.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Image:       "media/" + name + ".png",
		Text:        "steps",
		CookingTime: 10,
		PubDate:     pubDate,
	}
	require.NoError(t, repo.Create(recipe, lines))
	return recipe
}

func boolPtr(v bool) *bool { return &v }

func TestCreateRecipeWithLines(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	author := seedUser(t, db, "chef")
	flour := seedIngredient(t, db, "мука", "г")
	milk := seedIngredient(t, db, "молоко", "мл")

	recipe := seedRecipe(t, repo, author.ID, "Блины", time.Now(), []domain.IngredientLine{
		{IngredientID: flour.ID, Amount: 200},
		{IngredientID: milk.ID, Amount: 500},
	})
	require.NotZero(t, recipe.ID)
	require.False(t, recipe.PubDate.IsZero())

	lines, err := repo.Lines(recipe.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	// Ordered by ingredient name
	require.Equal(t, "молоко", lines[0].Name)
	require.Equal(t, "мл", lines[0].MeasurementUnit)
	require.Equal(t, 500, lines[0].Amount)
	require.Equal(t, "мука", lines[1].Name)
	require.Equal(t, 200, lines[1].Amount)
}

func TestLinesByRecipesGroupsOnePage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	author := seedUser(t, db, "chef")
	flour := seedIngredient(t, db, "мука", "г")
	milk := seedIngredient(t, db, "молоко", "мл")

	pancakes := seedRecipe(t, repo, author.ID, "Блины", time.Now(), []domain.IngredientLine{
		{IngredientID: flour.ID, Amount: 200},
		{IngredientID: milk.ID, Amount: 500},
	})
	bread := seedRecipe(t, repo, author.ID, "Хлеб", time.Now(), []domain.IngredientLine{
		{IngredientID: flour.ID, Amount: 300},
	})

	grouped, err := repo.LinesByRecipes([]uint{pancakes.ID, bread.ID, 999})
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Len(t, grouped[pancakes.ID], 2)
	// Ordered by ingredient name within each recipe
	require.Equal(t, "молоко", grouped[pancakes.ID][0].Name)
	require.Equal(t, "мука", grouped[pancakes.ID][1].Name)
	require.Len(t, grouped[bread.ID], 1)
	require.Equal(t, 300, grouped[bread.ID][0].Amount)

	grouped, err = repo.LinesByRecipes(nil)
	require.NoError(t, err)
	require.Empty(t, grouped)
}

func TestUpdateReplacesLineSet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	author := seedUser(t, db, "chef")
	flour := seedIngredient(t, db, "мука", "г")
	milk := seedIngredient(t, db, "молоко", "мл")
	sugar := seedIngredient(t, db, "сахар", "г")

	pub := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	recipe := seedRecipe(t, repo, author.ID, "Блины", pub, []domain.IngredientLine{
		{IngredientID: flour.ID, Amount: 200},
		{IngredientID: milk.ID, Amount: 500},
	})

	updated := &domain.Recipe{
		ID:          recipe.ID,
		AuthorID:    author.ID,
		Name:        "Оладьи",
		Image:       recipe.Image,
		Text:        recipe.Text,
		CookingTime: 15,
		PubDate:     recipe.PubDate,
	}
	// Disjoint line set: old lines must vanish entirely
	require.NoError(t, repo.Update(updated, []domain.IngredientLine{
		{IngredientID: sugar.ID, Amount: 50},
	}))

	lines, err := repo.Lines(recipe.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, "сахар", lines[0].Name)
	require.Equal(t, 50, lines[0].Amount)

	got, err := repo.FindByID(recipe.ID)
	require.NoError(t, err)
	require.Equal(t, "Оладьи", got.Name)
	require.Equal(t, 15, got.CookingTime)
	require.Equal(t, pub.Unix(), got.PubDate.Unix())
}

func TestUpdateUnknownRecipe(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)

	err := repo.Update(&domain.Recipe{ID: 404, Name: "x", Image: "x", Text: "x", CookingTime: 1}, nil)
	require.True(t, apperr.IsNotFound(err))
}

func TestDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	author := seedUser(t, db, "chef")
	fan := seedUser(t, db, "fan")
	flour := seedIngredient(t, db, "мука", "г")

	recipe := seedRecipe(t, repo, author.ID, "Блины", time.Now(), []domain.IngredientLine{
		{IngredientID: flour.ID, Amount: 200},
	})
	require.NoError(t, NewGormFavoriteRepository(db).Add(fan.ID, recipe.ID))
	require.NoError(t, NewGormShoppingCartRepository(db).Add(fan.ID, recipe.ID))

	require.NoError(t, repo.Delete(recipe.ID))

	_, err := repo.FindByID(recipe.ID)
	require.True(t, apperr.IsNotFound(err))

	var lines, favorites, carts int64
	require.NoError(t, db.Model(&domain.RecipeIngredient{}).Where("recipe_id = ?", recipe.ID).Count(&lines).Error)
	require.NoError(t, db.Model(&domain.Favorite{}).Where("recipe_id = ?", recipe.ID).Count(&favorites).Error)
	require.NoError(t, db.Model(&domain.ShoppingCart{}).Where("recipe_id = ?", recipe.ID).Count(&carts).Error)
	require.Zero(t, lines)
	require.Zero(t, favorites)
	require.Zero(t, carts)
}

func TestDeleteUnknownRecipe(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)

	require.True(t, apperr.IsNotFound(repo.Delete(404)))
}

func TestListNewestFirstWithDefaultLimit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	author := seedUser(t, db, "chef")

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		seedRecipe(t, repo, author.ID, "recipe", base.Add(time.Duration(i)*time.Hour), nil)
	}

	recipes, err := repo.List(domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, recipes, 6)
	for i := 1; i < len(recipes); i++ {
		require.False(t, recipes[i].PubDate.After(recipes[i-1].PubDate))
	}

	total, err := repo.CountFiltered(domain.ListFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 8, total)
}

func TestListFilterByAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	chef := seedUser(t, db, "chef")
	other := seedUser(t, db, "other")

	seedRecipe(t, repo, chef.ID, "a", time.Now(), nil)
	seedRecipe(t, repo, other.ID, "b", time.Now(), nil)

	recipes, err := repo.List(domain.ListFilter{AuthorID: chef.ID})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	require.Equal(t, chef.ID, recipes[0].AuthorID)
}

func TestListFavoritedFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	chef := seedUser(t, db, "chef")
	fan := seedUser(t, db, "fan")

	liked := seedRecipe(t, repo, chef.ID, "liked", time.Now(), nil)
	seedRecipe(t, repo, chef.ID, "other", time.Now(), nil)
	require.NoError(t, NewGormFavoriteRepository(db).Add(fan.ID, liked.ID))

	recipes, err := repo.List(domain.ListFilter{ViewerID: fan.ID, Favorited: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	require.Equal(t, liked.ID, recipes[0].ID)

	recipes, err = repo.List(domain.ListFilter{ViewerID: fan.ID, Favorited: boolPtr(false)})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	require.Equal(t, "other", recipes[0].Name)

	// Anonymous viewer asking for favorites gets nothing, not an error
	recipes, err = repo.List(domain.ListFilter{Favorited: boolPtr(true)})
	require.NoError(t, err)
	require.Empty(t, recipes)
}

func TestShoppingListAggregation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	chef := seedUser(t, db, "chef")
	buyer := seedUser(t, db, "buyer")
	flour := seedIngredient(t, db, "мука", "г")
	milk := seedIngredient(t, db, "молоко", "мл")

	pancakes := seedRecipe(t, repo, chef.ID, "Блины", time.Now(), []domain.IngredientLine{
		{IngredientID: flour.ID, Amount: 200},
		{IngredientID: milk.ID, Amount: 500},
	})
	bread := seedRecipe(t, repo, chef.ID, "Хлеб", time.Now(), []domain.IngredientLine{
		{IngredientID: flour.ID, Amount: 300},
	})

	cart := NewGormShoppingCartRepository(db)
	require.NoError(t, cart.Add(buyer.ID, pancakes.ID))
	require.NoError(t, cart.Add(buyer.ID, bread.ID))

	items, err := repo.ShoppingList(buyer.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, domain.ShoppingListItem{Name: "молоко", Unit: "мл", Total: 500}, items[0])
	require.Equal(t, domain.ShoppingListItem{Name: "мука", Unit: "г", Total: 500}, items[1])

	recipes, err := repo.CartRecipes(buyer.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.CartRecipe{
		{Name: "Блины", AuthorUsername: "chef"},
		{Name: "Хлеб", AuthorUsername: "chef"},
	}, recipes)
}

func TestShoppingListEmptyForOtherUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	chef := seedUser(t, db, "chef")
	flour := seedIngredient(t, db, "мука", "г")
	recipe := seedRecipe(t, repo, chef.ID, "Блины", time.Now(), []domain.IngredientLine{
		{IngredientID: flour.ID, Amount: 200},
	})
	require.NoError(t, NewGormShoppingCartRepository(db).Add(chef.ID, recipe.ID))

	items, err := repo.ShoppingList(chef.ID + 1)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestListByAuthorRespectsLimit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRecipeRepository(db)
	chef := seedUser(t, db, "chef")

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		seedRecipe(t, repo, chef.ID, "recipe", base.Add(time.Duration(i)*time.Hour), nil)
	}

	recipes, err := repo.ListByAuthor(chef.ID, 2)
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	recipes, err = repo.ListByAuthor(chef.ID, 0)
	require.NoError(t, err)
	require.Len(t, recipes, 3)

	count, err := repo.CountByAuthor(chef.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}
