package main

// @title Foodgram API
// @version 1.0
// @description Recipe sharing backend: recipes, favorites, shopping carts and author subscriptions
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/foodgram/foodgram-backend
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/foodgram/foodgram-backend/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Recipes
// @tag.description Recipe management endpoints

// @tag.name Ingredients
// @tag.description Ingredient catalog endpoints

// @tag.name Users
// @tag.description Profile and subscription endpoints

// @tag.name Health
// @tag.description Health check endpoints
