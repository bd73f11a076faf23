package domain

// Profile is the public representation of a user, shaped relative to a
// viewer identity. IsSubscribed is always false for anonymous viewers.
type Profile struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
	Avatar       string `json:"avatar"`
}

// ProfileWithRecipes is a profile enriched with the author's recipes,
// used by subscription payloads.
type ProfileWithRecipes struct {
	Profile
	Recipes      []AuthorRecipe `json:"recipes"`
	RecipesCount int64          `json:"recipes_count"`
}

// NewProfile maps a user entity to its public representation.
func NewProfile(u *User, isSubscribed bool) Profile {
	return Profile{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
		Avatar:       u.Avatar,
	}
}

// NewProfileWithRecipes maps a user entity plus resolved recipes to the
// enriched subscription shape.
func NewProfileWithRecipes(u *User, isSubscribed bool, recipes []AuthorRecipe, count int64) ProfileWithRecipes {
	if recipes == nil {
		recipes = []AuthorRecipe{}
	}
	return ProfileWithRecipes{
		Profile:      NewProfile(u, isSubscribed),
		Recipes:      recipes,
		RecipesCount: count,
	}
}
