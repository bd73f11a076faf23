//go:build wireinject
// +build wireinject

package recipe

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/foodgram/foodgram-backend/internal/ingredient/repository"
	"github.com/foodgram/foodgram-backend/internal/recipe/delivery/http"
	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	reciperepo "github.com/foodgram/foodgram-backend/internal/recipe/repository"
	"github.com/foodgram/foodgram-backend/internal/recipe/usecase/command"
	"github.com/foodgram/foodgram-backend/internal/recipe/usecase/query"
	userdomain "github.com/foodgram/foodgram-backend/internal/user/domain"
	userrepo "github.com/foodgram/foodgram-backend/internal/user/repository"
	"github.com/foodgram/foodgram-backend/kafka"
)

// ProvideRecipeRepository provides the recipe repository
func ProvideRecipeRepository(db *gorm.DB) domain.RecipeRepository {
	return reciperepo.NewGormRecipeRepository(db)
}

// ProvideIngredientResolver provides the ingredient existence check
func ProvideIngredientResolver(db *gorm.DB) domain.IngredientResolver {
	return repository.NewGormIngredientRepository(db)
}

func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepo.NewGormUserRepository(db)
}

func ProvideFollowRepository(db *gorm.DB) userdomain.FollowRepository {
	return userrepo.NewGormFollowRepository(db)
}

// Command Handlers Providers. Favorite and cart toggles share one
// interface, so handlers needing both are assembled from db directly.
func ProvideCreateRecipeHandler(repo domain.RecipeRepository, resolver domain.IngredientResolver) *command.CreateRecipeHandler {
	return command.NewCreateRecipeHandler(repo, resolver)
}

func ProvideUpdateRecipeHandler(repo domain.RecipeRepository, resolver domain.IngredientResolver) *command.UpdateRecipeHandler {
	return command.NewUpdateRecipeHandler(repo, resolver)
}

func ProvideDeleteRecipeHandler(repo domain.RecipeRepository) *command.DeleteRecipeHandler {
	return command.NewDeleteRecipeHandler(repo)
}

func ProvideAddFavoriteHandler(db *gorm.DB, repo domain.RecipeRepository) *command.AddFavoriteHandler {
	return command.NewAddFavoriteHandler(repo, reciperepo.NewGormFavoriteRepository(db))
}

func ProvideRemoveFavoriteHandler(db *gorm.DB, repo domain.RecipeRepository) *command.RemoveFavoriteHandler {
	return command.NewRemoveFavoriteHandler(repo, reciperepo.NewGormFavoriteRepository(db))
}

func ProvideAddToCartHandler(db *gorm.DB, repo domain.RecipeRepository) *command.AddToCartHandler {
	return command.NewAddToCartHandler(repo, reciperepo.NewGormShoppingCartRepository(db))
}

func ProvideRemoveFromCartHandler(db *gorm.DB, repo domain.RecipeRepository) *command.RemoveFromCartHandler {
	return command.NewRemoveFromCartHandler(repo, reciperepo.NewGormShoppingCartRepository(db))
}

// Query Handlers Providers
func ProvideGetRecipeHandler(db *gorm.DB, repo domain.RecipeRepository, users userdomain.UserRepository, follows userdomain.FollowRepository) *query.GetRecipeHandler {
	return query.NewGetRecipeHandler(repo,
		reciperepo.NewGormFavoriteRepository(db),
		reciperepo.NewGormShoppingCartRepository(db),
		users, follows)
}

func ProvideListRecipesHandler(db *gorm.DB, repo domain.RecipeRepository, users userdomain.UserRepository, follows userdomain.FollowRepository) *query.ListRecipesHandler {
	return query.NewListRecipesHandler(repo,
		reciperepo.NewGormFavoriteRepository(db),
		reciperepo.NewGormShoppingCartRepository(db),
		users, follows)
}

func ProvideBuildShoppingListHandler(repo domain.RecipeRepository) *query.BuildShoppingListHandler {
	return query.NewBuildShoppingListHandler(repo)
}

func ProvideGetLinkHandler(repo domain.RecipeRepository) *query.GetLinkHandler {
	return query.NewGetLinkHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideRecipeRepository,
	ProvideIngredientResolver,
	ProvideUserRepository,
	ProvideFollowRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateRecipeHandler,
	ProvideUpdateRecipeHandler,
	ProvideDeleteRecipeHandler,
	ProvideAddFavoriteHandler,
	ProvideRemoveFavoriteHandler,
	ProvideAddToCartHandler,
	ProvideRemoveFromCartHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetRecipeHandler,
	ProvideListRecipesHandler,
	ProvideBuildShoppingListHandler,
	ProvideGetLinkHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*http.RecipeHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewRecipeHandler,
	)
	return nil, nil
}
