package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/gorm"

	ingredientDelivery "github.com/foodgram/foodgram-backend/internal/ingredient/delivery/http"
	ingredientRepo "github.com/foodgram/foodgram-backend/internal/ingredient/repository"
	ingredientQuery "github.com/foodgram/foodgram-backend/internal/ingredient/usecase/query"
	recipeDelivery "github.com/foodgram/foodgram-backend/internal/recipe/delivery/http"
	recipeRepo "github.com/foodgram/foodgram-backend/internal/recipe/repository"
	recipeCommand "github.com/foodgram/foodgram-backend/internal/recipe/usecase/command"
	recipeQuery "github.com/foodgram/foodgram-backend/internal/recipe/usecase/query"
	userDelivery "github.com/foodgram/foodgram-backend/internal/user/delivery/http"
	userRepo "github.com/foodgram/foodgram-backend/internal/user/repository"
	userCommand "github.com/foodgram/foodgram-backend/internal/user/usecase/command"
	userQuery "github.com/foodgram/foodgram-backend/internal/user/usecase/query"
	"github.com/foodgram/foodgram-backend/kafka"
	"github.com/foodgram/foodgram-backend/pkg/database"
	"github.com/foodgram/foodgram-backend/pkg/logger"
	"github.com/foodgram/foodgram-backend/pkg/tracing"
)

func main() {
	// Load .env if present, real env wins
	_ = godotenv.Load()

	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "foodgram-backend")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting foodgram backend")

	// Initialize tracer
	_, shutdownTracer, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracer(ctx); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "foodgram"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Separate plain connection for liveness pings
	pingDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health-check connection")
	}
	defer pingDB.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Optional Redis cache for the ingredient catalog
	redisClient := newRedisClient()

	// Optional Kafka publisher for recipe lifecycle events
	publisher := newKafkaPublisher()
	defer publisher.Close()

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(db, pingDB, redisClient, publisher, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func runMigrations(db *gorm.DB) error {
	if err := userRepo.NewGormUserRepository(db).AutoMigrate(); err != nil {
		return err
	}
	if err := ingredientRepo.NewGormIngredientRepository(db).AutoMigrate(); err != nil {
		return err
	}
	return recipeRepo.NewGormRecipeRepository(db).AutoMigrate()
}

func newRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logger.Logger.Info().Msg("REDIS_ADDR not set, ingredient cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", addr).Msg("Redis unavailable, ingredient cache disabled")
		return nil
	}

	logger.Logger.Info().Str("addr", addr).Msg("Redis cache connected")
	return client
}

func newKafkaPublisher() *kafka.Publisher {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, recipe events disabled")
		return nil
	}

	publisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
	if err != nil {
		logger.Logger.Warn().Err(err).Str("brokers", brokers).Msg("Kafka unavailable, recipe events disabled")
		return nil
	}

	logger.Logger.Info().Str("brokers", brokers).Msg("Kafka publisher connected")
	return publisher
}

func startHTTPServer(db *gorm.DB, sqlDB *sql.DB, redisClient *redis.Client, publisher *kafka.Publisher, port string) {
	// Repositories
	users := userRepo.NewGormUserRepository(db)
	follows := userRepo.NewGormFollowRepository(db)
	ingredients := ingredientRepo.NewGormIngredientRepository(db)
	recipes := recipeRepo.NewGormRecipeRepository(db)
	favorites := recipeRepo.NewGormFavoriteRepository(db)
	cart := recipeRepo.NewGormShoppingCartRepository(db)

	// User handlers
	userHandler := userDelivery.NewUserHandler(
		userCommand.NewSubscribeHandler(users, follows, recipes),
		userCommand.NewUnsubscribeHandler(users, follows),
		userCommand.NewSetAvatarHandler(users),
		userCommand.NewDeleteAvatarHandler(users),
		userQuery.NewGetProfileHandler(users, follows),
		userQuery.NewListSubscriptionsHandler(follows, recipes),
	)

	// Ingredient handlers
	ingredientHandler := ingredientDelivery.NewIngredientHandler(
		ingredientQuery.NewSearchIngredientsHandler(ingredients),
		ingredientQuery.NewGetIngredientHandler(ingredients),
		redisClient,
	)

	// Recipe handlers
	recipeHandler := recipeDelivery.NewRecipeHandler(
		recipeCommand.NewCreateRecipeHandler(recipes, ingredients),
		recipeCommand.NewUpdateRecipeHandler(recipes, ingredients),
		recipeCommand.NewDeleteRecipeHandler(recipes),
		recipeCommand.NewAddFavoriteHandler(recipes, favorites),
		recipeCommand.NewRemoveFavoriteHandler(recipes, favorites),
		recipeCommand.NewAddToCartHandler(recipes, cart),
		recipeCommand.NewRemoveFromCartHandler(recipes, cart),
		recipeQuery.NewGetRecipeHandler(recipes, favorites, cart, users, follows),
		recipeQuery.NewListRecipesHandler(recipes, favorites, cart, users, follows),
		recipeQuery.NewBuildShoppingListHandler(recipes),
		recipeQuery.NewGetLinkHandler(recipes),
		recipes,
		publisher,
	)

	// Setup router
	router := mux.NewRouter()
	userHandler.RegisterRoutes(router)
	ingredientHandler.RegisterRoutes(router)
	recipeHandler.RegisterRoutes(router)

	// Health check endpoint
	recipeHandler.RegisterHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	handler := otelhttp.NewHandler(c.Handler(router), "foodgram-http")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
