package services

import (
	"log"

	"github.com/pkg/errors"
	"github.com/plumehq/plume/config"
	"github.com/plumehq/plume/db"
	"github.com/plumehq/plume/models"
	"gorm.io/gorm"
)

// ErrNotPostAuthor marks an edit attempt by someone other than the
// post's author. Handlers translate it to a silent redirect, not an
// error response.
var ErrNotPostAuthor = errors.New("requester is not the post author")

// ErrUnknownGroup marks a submission naming a group slug that does not
// exist. It is a validation failure, distinct from a missing post.
var ErrUnknownGroup = errors.New("unknown group")

// PostService interface
type PostService interface {
	CreatePost(userID uint, text string, groupSlug string, imageURL, thumbnailURL string) (*models.Post, error)
	EditPost(postID uint, userID uint, text string, groupSlug string, imageURL, thumbnailURL string) (*models.Post, error)
	GetPostDetail(postID uint) (*models.PostDetailResponse, error)
	GetPostByID(postID uint) (*models.Post, error)
}

// postService struct
type postService struct {
	Config      *config.Config
	postRepo    db.PostRepository
	groupRepo   db.GroupRepository
	commentRepo db.CommentRepository
}

// NewPostService creates a new instance of PostService
func NewPostService(postRepo db.PostRepository, groupRepo db.GroupRepository, commentRepo db.CommentRepository, conf *config.Config) PostService {
	return &postService{
		Config:      conf,
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
	}
}

// resolveGroup maps an optional group slug to its id. An empty slug
// means the post belongs to no group.
func (s *postService) resolveGroup(groupSlug string) (*uint, error) {
	if groupSlug == "" {
		return nil, nil
	}
	group, err := s.groupRepo.FindGroupBySlug(groupSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownGroup
		}
		return nil, err
	}
	return &group.ID, nil
}

func (s *postService) CreatePost(userID uint, text string, groupSlug string, imageURL, thumbnailURL string) (*models.Post, error) {
	groupID, err := s.resolveGroup(groupSlug)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:         text,
		UserID:       userID,
		GroupID:      groupID,
		ImageURL:     imageURL,
		ThumbnailURL: thumbnailURL,
	}
	if err := s.postRepo.CreatePost(post); err != nil {
		log.Printf("CreatePost error: %v", err)
		return nil, err
	}
	return post, nil
}

func (s *postService) EditPost(postID uint, userID uint, text string, groupSlug string, imageURL, thumbnailURL string) (*models.Post, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != userID {
		return post, ErrNotPostAuthor
	}

	groupID, err := s.resolveGroup(groupSlug)
	if err != nil {
		return nil, err
	}

	post.Text = text
	post.GroupID = groupID
	// Reassigning the author is a no-op: only the author reaches here.
	post.UserID = userID
	if imageURL != "" {
		post.ImageURL = imageURL
		post.ThumbnailURL = thumbnailURL
	}

	if err := s.postRepo.UpdatePost(post); err != nil {
		log.Printf("EditPost error: %v", err)
		return nil, err
	}
	return post, nil
}

func (s *postService) GetPostDetail(postID uint) (*models.PostDetailResponse, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	postsCount, err := s.postRepo.CountPostsByUserID(post.UserID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetCommentsByPostID(post.ID)
	if err != nil {
		return nil, err
	}

	return &models.PostDetailResponse{
		Post:       *post,
		PostsCount: postsCount,
		Comments:   comments,
	}, nil
}

func (s *postService) GetPostByID(postID uint) (*models.Post, error) {
	return s.postRepo.GetPostByID(postID)
}
