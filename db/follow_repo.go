package db

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/plumehq/plume/models"
	"gorm.io/gorm"
)

// ErrAlreadyFollowing is returned when the unique pair index rejects a
// duplicate follow. Callers treat it as the no-op case.
var ErrAlreadyFollowing = errors.New("already following")

type FollowRepository interface {
	IsFollowing(userID, authorID uint) (bool, error)
	CreateFollow(follow *models.Follow) error
	DeleteFollow(userID, authorID uint) error
	CountFollowers(authorID uint) (int64, error)
}

type followRepo struct {
	DB *gorm.DB
}

func NewFollowRepo(db *GormDB) FollowRepository {
	return &followRepo{db.DB}
}

func (r *followRepo) IsFollowing(userID, authorID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *followRepo) CreateFollow(follow *models.Follow) error {
	if err := r.DB.Create(follow).Error; err != nil {
		// Two concurrent follow requests can both pass the existence
		// check; the unique index decides, and the loser is a no-op.
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key value") {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

// DeleteFollow removes the pair if present. Deleting a missing pair is
// not an error.
func (r *followRepo) DeleteFollow(userID, authorID uint) error {
	return r.DB.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
}

func (r *followRepo) CountFollowers(authorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Follow{}).Where("author_id = ?", authorID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
