package query

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	ingredientdomain "github.com/foodgram/foodgram-backend/internal/ingredient/domain"
	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	reciperepo "github.com/foodgram/foodgram-backend/internal/recipe/repository"
	userdomain "github.com/foodgram/foodgram-backend/internal/user/domain"
	userrepo "github.com/foodgram/foodgram-backend/internal/user/repository"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

type queryEnv struct {
	db        *gorm.DB
	recipes   *reciperepo.GormRecipeRepository
	favorites *reciperepo.GormFavoriteRepository
	cart      *reciperepo.GormShoppingCartRepository
	users     *userrepo.GormUserRepository
	follows   *userrepo.GormFollowRepository
}

func setupQueryEnv(t *testing.T) *queryEnv {
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
	return &queryEnv{
		db:        db,
		recipes:   reciperepo.NewGormRecipeRepository(db),
		favorites: reciperepo.NewGormFavoriteRepository(db),
		cart:      reciperepo.NewGormShoppingCartRepository(db),
		users:     userrepo.NewGormUserRepository(db),
		follows:   userrepo.NewGormFollowRepository(db),
	}
}

func (e *queryEnv) seedUser(t *testing.T, username string) *userdomain.User {
	t.Helper()
	u := &userdomain.User{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *queryEnv) seedIngredient(t *testing.T, name, unit string) *ingredientdomain.Ingredient {
	t.Helper()
	ing := &ingredientdomain.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, e.db.Create(ing).Error)
	return ing
}

func (e *queryEnv) seedRecipe(t *testing.T, authorID uint, name string, lines []domain.IngredientLine) *domain.Recipe {
	t.Helper()
	recipe := &domain.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Image:       "media/" + name + ".png",
		Text:        "steps",
		CookingTime: 10,
	}
	require.NoError(t, e.recipes.Create(recipe, lines))
	return recipe
}

func TestRenderShoppingList(t *testing.T) {
	now := time.Date(2024, 3, 8, 15, 30, 0, 0, time.UTC)
	items := []domain.ShoppingListItem{
		{Name: "молоко", Unit: "мл", Total: 500},
		{Name: "мука", Unit: "г", Total: 500},
	}
	recipes := []domain.CartRecipe{
		{Name: "Блины", AuthorUsername: "chef"},
		{Name: "Хлеб", AuthorUsername: "baker"},
	}

	got := RenderShoppingList(now, items, recipes)
	want := strings.Join([]string{
		"Список покупок Foodgram на 08.03.2024:",
		"\nПродукты:",
		"1. Молоко (мл) — 500",
		"2. Мука (г) — 500",
		"\nРецепты, для которых нужны эти продукты:",
		"1. Блины — @chef",
		"2. Хлеб — @baker",
	}, "\n")
	require.Equal(t, want, got)
}

func TestShoppingListHandlerAggregates(t *testing.T) {
	env := setupQueryEnv(t)
	chef := env.seedUser(t, "chef")
	buyer := env.seedUser(t, "buyer")
	flour := env.seedIngredient(t, "мука", "г")

	pancakes := env.seedRecipe(t, chef.ID, "Блины", []domain.IngredientLine{{IngredientID: flour.ID, Amount: 200}})
	bread := env.seedRecipe(t, chef.ID, "Хлеб", []domain.IngredientLine{{IngredientID: flour.ID, Amount: 300}})
	require.NoError(t, env.cart.Add(buyer.ID, pancakes.ID))
	require.NoError(t, env.cart.Add(buyer.ID, bread.ID))

	handler := NewBuildShoppingListHandler(env.recipes)
	handler.now = func() time.Time { return time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC) }

	report, err := handler.Handle(BuildShoppingListQuery{UserID: buyer.ID})
	require.NoError(t, err)
	require.Contains(t, report, "Список покупок Foodgram на 08.03.2024:")
	require.Contains(t, report, "1. Мука (г) — 500")
	require.Contains(t, report, "1. Блины — @chef")
	require.Contains(t, report, "2. Хлеб — @chef")
}

func TestShoppingListHandlerEmptyCart(t *testing.T) {
	env := setupQueryEnv(t)
	buyer := env.seedUser(t, "buyer")

	handler := NewBuildShoppingListHandler(env.recipes)
	_, err := handler.Handle(BuildShoppingListQuery{UserID: buyer.ID})
	require.True(t, apperr.IsConflict(err))
	require.EqualError(t, err, MsgEmptyShoppingList)
}

func TestShoppingListHandlerRequiresAuth(t *testing.T) {
	env := setupQueryEnv(t)

	handler := NewBuildShoppingListHandler(env.recipes)
	_, err := handler.Handle(BuildShoppingListQuery{UserID: 0})
	require.True(t, apperr.IsAuthRequired(err))
}
