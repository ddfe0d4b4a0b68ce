package services

import (
	"github.com/plumehq/plume/config"
	"github.com/plumehq/plume/db"
	"github.com/plumehq/plume/models"
)

// FeedService composes the read-only post collections: the global
// index, per-group and per-author feeds, and the follow feed.
type FeedService interface {
	GetIndexFeed(page int) (*models.FeedPage, error)
	GetGroupFeed(slug string, page int) (*models.Group, *models.FeedPage, error)
	GetProfile(username string, viewerID uint, page int) (*models.ProfileResponse, error)
	GetFollowFeed(userID uint, page int) (*models.FeedPage, error)
}

type feedService struct {
	Config     *config.Config
	postRepo   db.PostRepository
	groupRepo  db.GroupRepository
	authRepo   db.AuthRepository
	followRepo db.FollowRepository
}

// NewFeedService instantiates a FeedService
func NewFeedService(postRepo db.PostRepository, groupRepo db.GroupRepository, authRepo db.AuthRepository, followRepo db.FollowRepository, conf *config.Config) FeedService {
	return &feedService{
		Config:     conf,
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		authRepo:   authRepo,
		followRepo: followRepo,
	}
}

func (s *feedService) GetIndexFeed(page int) (*models.FeedPage, error) {
	return s.postRepo.GetAllPosts(page)
}

func (s *feedService) GetGroupFeed(slug string, page int) (*models.Group, *models.FeedPage, error) {
	group, err := s.groupRepo.FindGroupBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	feed, err := s.postRepo.GetPostsByGroupID(group.ID, page)
	if err != nil {
		return nil, nil, err
	}
	return group, feed, nil
}

// GetProfile returns an author's paginated posts, their total post
// count, and whether the viewer follows them. The following flag stays
// false for anonymous viewers (viewerID 0) and for authors viewing
// their own profile.
func (s *feedService) GetProfile(username string, viewerID uint, page int) (*models.ProfileResponse, error) {
	author, err := s.authRepo.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}

	feed, err := s.postRepo.GetPostsByUserID(author.ID, page)
	if err != nil {
		return nil, err
	}

	postCount, err := s.postRepo.CountPostsByUserID(author.ID)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != 0 && viewerID != author.ID {
		following, err = s.followRepo.IsFollowing(viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &models.ProfileResponse{
		Author:    author.Response(),
		PostCount: postCount,
		Following: following,
		FeedPage:  *feed,
	}, nil
}

func (s *feedService) GetFollowFeed(userID uint, page int) (*models.FeedPage, error) {
	return s.postRepo.GetFollowedPosts(userID, page)
}
