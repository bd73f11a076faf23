//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	reciperepo "github.com/foodgram/foodgram-backend/internal/recipe/repository"
	"github.com/foodgram/foodgram-backend/internal/user/delivery/http"
	"github.com/foodgram/foodgram-backend/internal/user/domain"
	"github.com/foodgram/foodgram-backend/internal/user/repository"
	"github.com/foodgram/foodgram-backend/internal/user/usecase/command"
	"github.com/foodgram/foodgram-backend/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// ProvideFollowRepository provides the follow repository
func ProvideFollowRepository(db *gorm.DB) domain.FollowRepository {
	return repository.NewGormFollowRepository(db)
}

// ProvideAuthorRecipeProvider provides per-author recipe lookups,
// backed by the recipe repository.
func ProvideAuthorRecipeProvider(db *gorm.DB) domain.AuthorRecipeProvider {
	return reciperepo.NewGormRecipeRepository(db)
}

// Command Handlers Providers
func ProvideSubscribeHandler(users domain.UserRepository, follows domain.FollowRepository, recipes domain.AuthorRecipeProvider) *command.SubscribeHandler {
	return command.NewSubscribeHandler(users, follows, recipes)
}

func ProvideUnsubscribeHandler(users domain.UserRepository, follows domain.FollowRepository) *command.UnsubscribeHandler {
	return command.NewUnsubscribeHandler(users, follows)
}

func ProvideSetAvatarHandler(users domain.UserRepository) *command.SetAvatarHandler {
	return command.NewSetAvatarHandler(users)
}

func ProvideDeleteAvatarHandler(users domain.UserRepository) *command.DeleteAvatarHandler {
	return command.NewDeleteAvatarHandler(users)
}

// Query Handlers Providers
func ProvideGetProfileHandler(users domain.UserRepository, follows domain.FollowRepository) *query.GetProfileHandler {
	return query.NewGetProfileHandler(users, follows)
}

func ProvideListSubscriptionsHandler(follows domain.FollowRepository, recipes domain.AuthorRecipeProvider) *query.ListSubscriptionsHandler {
	return query.NewListSubscriptionsHandler(follows, recipes)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideFollowRepository,
	ProvideAuthorRecipeProvider,
)

var CommandHandlerSet = wire.NewSet(
	ProvideSubscribeHandler,
	ProvideUnsubscribeHandler,
	ProvideSetAvatarHandler,
	ProvideDeleteAvatarHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetProfileHandler,
	ProvideListSubscriptionsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.UserHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewUserHandler,
	)
	return nil, nil
}
