package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/foodgram/foodgram-backend/internal/user/domain"
)

// GormFollowRepository implements FollowRepository using GORM
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a new GORM follow repository
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

// Create inserts the relation. The unique (user_id, author_id) index is
// authoritative for duplicates; callers match gorm.ErrDuplicatedKey.
func (r *GormFollowRepository) Create(userID, authorID uint) error {
	f := &domain.Follow{UserID: userID, AuthorID: authorID}
	return r.db.Create(f).Error
}

// Delete removes the relation and reports whether a row existed
func (r *GormFollowRepository) Delete(userID, authorID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&domain.Follow{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete follow: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Exists reports whether the relation is present
func (r *GormFollowRepository) Exists(userID, authorID uint) (bool, error) {
	var cnt int64
	if err := r.db.Model(&domain.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&cnt).Error; err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return cnt > 0, nil
}

// FollowedIDs returns which of the given author ids the user follows
func (r *GormFollowRepository) FollowedIDs(userID uint, authorIDs []uint) (map[uint]bool, error) {
	followed := make(map[uint]bool, len(authorIDs))
	if userID == 0 || len(authorIDs) == 0 {
		return followed, nil
	}
	var found []uint
	if err := r.db.Model(&domain.Follow{}).
		Where("user_id = ? AND author_id IN ?", userID, authorIDs).
		Pluck("author_id", &found).Error; err != nil {
		return nil, fmt.Errorf("failed to check follows: %w", err)
	}
	for _, id := range found {
		followed[id] = true
	}
	return followed, nil
}

// ListAuthors returns followed authors ordered by username
func (r *GormFollowRepository) ListAuthors(userID uint, limit, offset int) ([]domain.User, error) {
	var authors []domain.User
	err := r.db.Model(&domain.User{}).
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.user_id = ?", userID).
		Order("users.username").
		Limit(limit).Offset(offset).
		Find(&authors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list followed authors: %w", err)
	}
	return authors, nil
}

// CountAuthors returns the number of authors the user follows
func (r *GormFollowRepository) CountAuthors(userID uint) (int64, error) {
	var cnt int64
	err := r.db.Model(&domain.Follow{}).Where("user_id = ?", userID).Count(&cnt).Error
	return cnt, err
}
