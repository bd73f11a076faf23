//go:build wireinject
// +build wireinject

package ingredient

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/foodgram/foodgram-backend/internal/ingredient/delivery/http"
	"github.com/foodgram/foodgram-backend/internal/ingredient/domain"
	"github.com/foodgram/foodgram-backend/internal/ingredient/repository"
	"github.com/foodgram/foodgram-backend/internal/ingredient/usecase/query"
)

// ProvideIngredientRepository provides the ingredient repository
func ProvideIngredientRepository(db *gorm.DB) domain.IngredientRepository {
	return repository.NewGormIngredientRepository(db)
}

// Query Handlers Providers
func ProvideSearchIngredientsHandler(repo domain.IngredientRepository) *query.SearchIngredientsHandler {
	return query.NewSearchIngredientsHandler(repo)
}

func ProvideGetIngredientHandler(repo domain.IngredientRepository) *query.GetIngredientHandler {
	return query.NewGetIngredientHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideIngredientRepository,
)

var QueryHandlerSet = wire.NewSet(
	ProvideSearchIngredientsHandler,
	ProvideGetIngredientHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, redisClient *redis.Client) (*http.IngredientHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewIngredientHandler,
	)
	return nil, nil
}
