package kafka

import "time"

// RecipeEvent describes a recipe lifecycle change published to the
// event bus. Consumers (search indexing, notifications) live outside
// this service.
type RecipeEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	RecipeID  uint      `json:"recipe_id"`
	AuthorID  uint      `json:"author_id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeRecipePublished = "recipe.published"
	EventTypeRecipeDeleted   = "recipe.deleted"
)

// Kafka topics
const (
	TopicRecipeEvents = "recipe-events"
)
