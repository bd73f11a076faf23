package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/foodgram/foodgram-backend/internal/ingredient/domain"
	"github.com/foodgram/foodgram-backend/internal/ingredient/repository"
	"github.com/foodgram/foodgram-backend/pkg/database"
	"github.com/foodgram/foodgram-backend/pkg/logger"
)

// Bulk loads the ingredient catalog from a JSON file. Entries whose
// (name, measurement_unit) pair already exists are skipped.
func main() {
	_ = godotenv.Load()

	logger.Init("loadingredients", getEnv("ENVIRONMENT", "development") == "development")

	path := flag.String("file", "data/ingredients.json", "path to the ingredients JSON file")
	flag.Parse()

	raw, err := os.ReadFile(*path)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("file", *path).Msg("Failed to read ingredients file")
	}

	var items []domain.Ingredient
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Logger.Fatal().Err(err).Str("file", *path).Msg("Failed to parse ingredients file")
	}

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "foodgram"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	repo := repository.NewGormIngredientRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	added, skipped, err := repo.Import(items)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Import failed")
	}

	logger.Logger.Info().
		Str("file", *path).
		Int("added", added).
		Int("skipped", skipped).
		Msg("Ingredient catalog loaded")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
