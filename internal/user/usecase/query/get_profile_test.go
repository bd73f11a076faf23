package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	recipedomain "github.com/foodgram/foodgram-backend/internal/recipe/domain"
	reciperepo "github.com/foodgram/foodgram-backend/internal/recipe/repository"
	"github.com/foodgram/foodgram-backend/internal/user/domain"
	userrepo "github.com/foodgram/foodgram-backend/internal/user/repository"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Follow{},
		&recipedomain.Recipe{},
		&recipedomain.RecipeIngredient{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestGetProfileViewerRelative(t *testing.T) {
	db := setupDB(t)
	users := userrepo.NewGormUserRepository(db)
	follows := userrepo.NewGormFollowRepository(db)
	viewer := seedUser(t, db, "viewer")
	author := seedUser(t, db, "author")
	require.NoError(t, follows.Create(viewer.ID, author.ID))

	handler := NewGetProfileHandler(users, follows)

	profile, err := handler.Handle(GetProfileQuery{ViewerID: viewer.ID, UserID: author.ID})
	require.NoError(t, err)
	require.Equal(t, "author", profile.Username)
	require.True(t, profile.IsSubscribed)

	// Anonymous viewers never see a subscription
	profile, err = handler.Handle(GetProfileQuery{ViewerID: 0, UserID: author.ID})
	require.NoError(t, err)
	require.False(t, profile.IsSubscribed)

	// A user is never subscribed to themselves
	profile, err = handler.Handle(GetProfileQuery{ViewerID: author.ID, UserID: author.ID})
	require.NoError(t, err)
	require.False(t, profile.IsSubscribed)
}

func TestGetProfileUnknownUser(t *testing.T) {
	db := setupDB(t)
	handler := NewGetProfileHandler(userrepo.NewGormUserRepository(db), userrepo.NewGormFollowRepository(db))

	_, err := handler.Handle(GetProfileQuery{UserID: 404})
	require.True(t, apperr.IsNotFound(err))
}

func TestListSubscriptionsOrderedByUsername(t *testing.T) {
	db := setupDB(t)
	follows := userrepo.NewGormFollowRepository(db)
	recipes := reciperepo.NewGormRecipeRepository(db)
	follower := seedUser(t, db, "follower")
	zoe := seedUser(t, db, "zoe")
	anna := seedUser(t, db, "anna")
	require.NoError(t, follows.Create(follower.ID, zoe.ID))
	require.NoError(t, follows.Create(follower.ID, anna.ID))

	require.NoError(t, recipes.Create(&recipedomain.Recipe{
		AuthorID: anna.ID, Name: "Суп", Image: "i", Text: "t", CookingTime: 5,
		PubDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}, nil))

	handler := NewListSubscriptionsHandler(follows, recipes)

	page, err := handler.Handle(ListSubscriptionsQuery{UserID: follower.ID})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)
	require.Len(t, page.Authors, 2)
	require.Equal(t, "anna", page.Authors[0].Username)
	require.Equal(t, "zoe", page.Authors[1].Username)

	require.Len(t, page.Authors[0].Recipes, 1)
	require.EqualValues(t, 1, page.Authors[0].RecipesCount)
	require.NotNil(t, page.Authors[1].Recipes)
	require.Empty(t, page.Authors[1].Recipes)
	require.True(t, page.Authors[0].IsSubscribed)
}

func TestListSubscriptionsPagination(t *testing.T) {
	db := setupDB(t)
	follows := userrepo.NewGormFollowRepository(db)
	recipes := reciperepo.NewGormRecipeRepository(db)
	follower := seedUser(t, db, "follower")
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		author := seedUser(t, db, name)
		require.NoError(t, follows.Create(follower.ID, author.ID))
	}

	handler := NewListSubscriptionsHandler(follows, recipes)

	// Default page size
	page, err := handler.Handle(ListSubscriptionsQuery{UserID: follower.ID})
	require.NoError(t, err)
	require.Len(t, page.Authors, 6)
	require.EqualValues(t, 7, page.Total)

	page, err = handler.Handle(ListSubscriptionsQuery{UserID: follower.ID, Limit: 3, Offset: 6})
	require.NoError(t, err)
	require.Len(t, page.Authors, 1)
	require.Equal(t, "g", page.Authors[0].Username)
}

func TestListSubscriptionsRequiresAuth(t *testing.T) {
	db := setupDB(t)
	handler := NewListSubscriptionsHandler(userrepo.NewGormFollowRepository(db), reciperepo.NewGormRecipeRepository(db))

	_, err := handler.Handle(ListSubscriptionsQuery{UserID: 0})
	require.True(t, apperr.IsAuthRequired(err))
}
