package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	ingredientdomain "github.com/foodgram/foodgram-backend/internal/ingredient/domain"
	recipedomain "github.com/foodgram/foodgram-backend/internal/recipe/domain"
	reciperepo "github.com/foodgram/foodgram-backend/internal/recipe/repository"
	"github.com/foodgram/foodgram-backend/internal/user/domain"
	userrepo "github.com/foodgram/foodgram-backend/internal/user/repository"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

type userEnv struct {
	db      *gorm.DB
	users   *userrepo.GormUserRepository
	follows *userrepo.GormFollowRepository
	recipes *reciperepo.GormRecipeRepository
}

func setupUserEnv(t *testing.T) *userEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Follow{},
		&ingredientdomain.Ingredient{},
		&recipedomain.Recipe{},
		&recipedomain.RecipeIngredient{},
	))
	return &userEnv{
		db:      db,
		users:   userrepo.NewGormUserRepository(db),
		follows: userrepo.NewGormFollowRepository(db),
		recipes: reciperepo.NewGormRecipeRepository(db),
	}
}

func (e *userEnv) seedUser(t *testing.T, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *userEnv) seedRecipe(t *testing.T, authorID uint, name string, pubDate time.Time) *recipedomain.Recipe {
	t.Helper()
	recipe := &recipedomain.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Image:       "media/" + name + ".png",
		Text:        "steps",
		CookingTime: 10,
		PubDate:     pubDate,
	}
	require.NoError(t, e.recipes.Create(recipe, nil))
	return recipe
}

func TestSubscribeReturnsEnrichedAuthor(t *testing.T) {
	env := setupUserEnv(t)
	follower := env.seedUser(t, "follower")
	author := env.seedUser(t, "author")

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		env.seedRecipe(t, author.ID, "recipe", base.Add(time.Duration(i)*time.Hour))
	}

	handler := NewSubscribeHandler(env.users, env.follows, env.recipes)
	profile, err := handler.Handle(SubscribeCommand{UserID: follower.ID, AuthorID: author.ID, RecipesLimit: 2})
	require.NoError(t, err)
	require.Equal(t, author.ID, profile.ID)
	require.True(t, profile.IsSubscribed)
	require.Len(t, profile.Recipes, 2)
	require.EqualValues(t, 3, profile.RecipesCount)

	exists, err := env.follows.Exists(follower.ID, author.ID)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestSubscribeToSelf(t *testing.T) {
	env := setupUserEnv(t)
	user := env.seedUser(t, "solo")

	handler := NewSubscribeHandler(env.users, env.follows, env.recipes)
	_, err := handler.Handle(SubscribeCommand{UserID: user.ID, AuthorID: user.ID})
	require.True(t, apperr.IsConflict(err))
	require.EqualError(t, err, MsgSelfSubscribe)
}

func TestSubscribeTwice(t *testing.T) {
	env := setupUserEnv(t)
	follower := env.seedUser(t, "follower")
	author := env.seedUser(t, "author")

	handler := NewSubscribeHandler(env.users, env.follows, env.recipes)
	_, err := handler.Handle(SubscribeCommand{UserID: follower.ID, AuthorID: author.ID})
	require.NoError(t, err)

	_, err = handler.Handle(SubscribeCommand{UserID: follower.ID, AuthorID: author.ID})
	require.True(t, apperr.IsConflict(err))
	require.EqualError(t, err, MsgAlreadyFollowing)
}

func TestSubscribeUnknownAuthor(t *testing.T) {
	env := setupUserEnv(t)
	follower := env.seedUser(t, "follower")

	handler := NewSubscribeHandler(env.users, env.follows, env.recipes)
	_, err := handler.Handle(SubscribeCommand{UserID: follower.ID, AuthorID: 404})
	require.True(t, apperr.IsNotFound(err))
}

func TestSubscribeRequiresAuth(t *testing.T) {
	env := setupUserEnv(t)

	handler := NewSubscribeHandler(env.users, env.follows, env.recipes)
	_, err := handler.Handle(SubscribeCommand{UserID: 0, AuthorID: 1})
	require.True(t, apperr.IsAuthRequired(err))
}

func TestUnsubscribe(t *testing.T) {
	env := setupUserEnv(t)
	follower := env.seedUser(t, "follower")
	author := env.seedUser(t, "author")

	subscribe := NewSubscribeHandler(env.users, env.follows, env.recipes)
	unsubscribe := NewUnsubscribeHandler(env.users, env.follows)

	_, err := subscribe.Handle(SubscribeCommand{UserID: follower.ID, AuthorID: author.ID})
	require.NoError(t, err)
	require.NoError(t, unsubscribe.Handle(UnsubscribeCommand{UserID: follower.ID, AuthorID: author.ID}))

	err = unsubscribe.Handle(UnsubscribeCommand{UserID: follower.ID, AuthorID: author.ID})
	require.True(t, apperr.IsConflict(err))
	require.EqualError(t, err, MsgNotFollowing)
}

func TestSetAvatar(t *testing.T) {
	env := setupUserEnv(t)
	user := env.seedUser(t, "pic")

	set := NewSetAvatarHandler(env.users)
	del := NewDeleteAvatarHandler(env.users)

	err := set.Handle(SetAvatarCommand{UserID: user.ID, Avatar: ""})
	require.True(t, apperr.IsValidation(err))

	require.NoError(t, set.Handle(SetAvatarCommand{UserID: user.ID, Avatar: "media/avatars/pic.png"}))
	stored, err := env.users.FindByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, "media/avatars/pic.png", stored.Avatar)

	require.NoError(t, del.Handle(DeleteAvatarCommand{UserID: user.ID}))
	stored, err = env.users.FindByID(user.ID)
	require.NoError(t, err)
	require.Empty(t, stored.Avatar)
}

func TestSetAvatarUnknownUser(t *testing.T) {
	env := setupUserEnv(t)

	set := NewSetAvatarHandler(env.users)
	require.True(t, apperr.IsNotFound(set.Handle(SetAvatarCommand{UserID: 404, Avatar: "x"})))
}
