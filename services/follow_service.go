package services

import (
	"log"

	"github.com/pkg/errors"
	"github.com/plumehq/plume/config"
	"github.com/plumehq/plume/db"
	"github.com/plumehq/plume/models"
)

// FollowService interface
type FollowService interface {
	Follow(userID uint, username string) (*models.User, error)
	Unfollow(userID uint, username string) (*models.User, error)
}

// followService struct
type followService struct {
	Config     *config.Config
	followRepo db.FollowRepository
	authRepo   db.AuthRepository
}

// NewFollowService creates a new instance of FollowService
func NewFollowService(followRepo db.FollowRepository, authRepo db.AuthRepository, conf *config.Config) FollowService {
	return &followService{
		Config:     conf,
		followRepo: followRepo,
		authRepo:   authRepo,
	}
}

// Follow subscribes a user to an author. Following an author twice and
// following yourself are both no-ops; the target profile is returned
// either way so the handler can redirect to it.
func (s *followService) Follow(userID uint, username string) (*models.User, error) {
	author, err := s.authRepo.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}

	if author.ID == userID {
		return author, nil
	}

	following, err := s.followRepo.IsFollowing(userID, author.ID)
	if err != nil {
		return nil, err
	}
	if following {
		return author, nil
	}

	follow := &models.Follow{
		UserID:   userID,
		AuthorID: author.ID,
	}
	if err := s.followRepo.CreateFollow(follow); err != nil {
		if errors.Is(err, db.ErrAlreadyFollowing) {
			// Lost the race against a concurrent follow; same outcome.
			return author, nil
		}
		log.Printf("Follow error: %v", err)
		return nil, err
	}
	return author, nil
}

// Unfollow removes the subscription if present; absent pairs are a no-op.
func (s *followService) Unfollow(userID uint, username string) (*models.User, error) {
	author, err := s.authRepo.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}

	if err := s.followRepo.DeleteFollow(userID, author.ID); err != nil {
		log.Printf("Unfollow error: %v", err)
		return nil, err
	}
	return author, nil
}
