package domain

import "time"

// Follow is a (follower, author) relation. The composite unique index is
// the source of truth for "already subscribed": a concurrent duplicate
// insert must surface as a constraint violation, not rely on a prior
// existence read.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index:idx_follow_pair,unique"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index:idx_follow_pair,unique"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Follow) TableName() string {
	return "follows"
}

// FollowRepository defines the contract for follow relations
type FollowRepository interface {
	// Create inserts the relation; a duplicate pair returns
	// gorm.ErrDuplicatedKey via the unique constraint.
	Create(userID, authorID uint) error
	// Delete removes the relation and reports whether a row existed.
	Delete(userID, authorID uint) (bool, error)
	Exists(userID, authorID uint) (bool, error)
	// FollowedIDs returns which of the given author ids the user
	// follows, in one query. Empty for an anonymous user.
	FollowedIDs(userID uint, authorIDs []uint) (map[uint]bool, error)
	// ListAuthors returns followed authors ordered by username.
	ListAuthors(userID uint, limit, offset int) ([]User, error)
	CountAuthors(userID uint) (int64, error)
}
