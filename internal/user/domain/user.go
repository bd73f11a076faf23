package domain

import (
	"time"
)

// User represents a registered author. Credential verification and token
// issuance live in the external identity provider; this service only
// stores the public profile.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:254;not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	FirstName string    `json:"first_name" gorm:"size:150;not null"`
	LastName  string    `json:"last_name" gorm:"size:150;not null"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	// FindByIDs loads all given users in one query, keyed by id.
	// Unknown ids are simply absent from the map.
	FindByIDs(ids []uint) (map[uint]User, error)
	FindByUsername(username string) (*User, error)
	UpdateAvatar(id uint, avatar string) error
	Count() (int64, error)
}

// AuthorRecipe is the short recipe shape shown on enriched author
// profiles. The recipe domain provides it; keeping the type here avoids
// a dependency cycle between the two domains.
type AuthorRecipe struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// AuthorRecipeProvider resolves an author's recipes for enriched
// subscription payloads. Implemented by the recipe repository.
type AuthorRecipeProvider interface {
	ListByAuthor(authorID uint, limit int) ([]AuthorRecipe, error)
	CountByAuthor(authorID uint) (int64, error)
}
