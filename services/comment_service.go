package services

import (
	"log"

	"github.com/plumehq/plume/config"
	"github.com/plumehq/plume/db"
	"github.com/plumehq/plume/models"
)

// CommentService interface
type CommentService interface {
	AddComment(postID uint, userID uint, text string) (*models.Comment, error)
}

// commentService struct
type commentService struct {
	Config      *config.Config
	commentRepo db.CommentRepository
	postRepo    db.PostRepository
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(commentRepo db.CommentRepository, postRepo db.PostRepository, conf *config.Config) CommentService {
	return &commentService{
		Config:      conf,
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment attaches a comment to an existing post. A missing post
// surfaces as gorm.ErrRecordNotFound from the post lookup.
func (s *commentService) AddComment(postID uint, userID uint, text string) (*models.Comment, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   text,
		PostID: post.ID,
		UserID: userID,
	}
	if err := s.commentRepo.CreateComment(comment); err != nil {
		log.Printf("AddComment error: %v", err)
		return nil, err
	}
	return comment, nil
}
