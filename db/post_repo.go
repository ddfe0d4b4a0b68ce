package db

import (
	"github.com/plumehq/plume/models"
	"gorm.io/gorm"
)

type PostRepository interface {
	CreatePost(post *models.Post) error
	UpdatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetAllPosts(page int) (*models.FeedPage, error)
	GetPostsByGroupID(groupID uint, page int) (*models.FeedPage, error)
	GetPostsByUserID(userID uint, page int) (*models.FeedPage, error)
	CountPostsByUserID(userID uint) (int64, error)
	GetFollowedPosts(userID uint, page int) (*models.FeedPage, error)
}

type postRepo struct {
	DB *gorm.DB
}

func NewPostRepo(db *GormDB) PostRepository {
	return &postRepo{db.DB}
}

func (r *postRepo) CreatePost(post *models.Post) error {
	if err := r.DB.Create(post).Error; err != nil {
		return err
	}
	return nil
}

func (r *postRepo) UpdatePost(post *models.Post) error {
	return r.DB.Model(&models.Post{}).Where("id = ?", post.ID).
		Select("text", "group_id", "user_id", "image_url", "thumbnail_url").
		Updates(map[string]interface{}{
			"text":          post.Text,
			"group_id":      post.GroupID,
			"user_id":       post.UserID,
			"image_url":     post.ImageURL,
			"thumbnail_url": post.ThumbnailURL,
		}).Error
}

func (r *postRepo) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.DB.Preload("User").Preload("Group").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// feedPage runs the count+clamp+slice dance shared by every feed query.
// The query must already be scoped (group, author, follow graph).
func (r *postRepo) feedPage(query *gorm.DB, page int) (*models.FeedPage, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, err
	}

	page, offset := ClampPage(page, total, DefaultPageSize)

	var posts []models.Post
	err := query.Session(&gorm.Session{}).Model(&models.Post{}).
		Preload("User").
		Preload("Group").
		Order("posts.created_at DESC, posts.id DESC").
		Limit(DefaultPageSize).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return &models.FeedPage{
		Posts:     posts,
		Page:      page,
		PageCount: PageCount(total, DefaultPageSize),
		Total:     total,
	}, nil
}

func (r *postRepo) GetAllPosts(page int) (*models.FeedPage, error) {
	return r.feedPage(r.DB, page)
}

func (r *postRepo) GetPostsByGroupID(groupID uint, page int) (*models.FeedPage, error) {
	return r.feedPage(r.DB.Where("posts.group_id = ?", groupID), page)
}

func (r *postRepo) GetPostsByUserID(userID uint, page int) (*models.FeedPage, error) {
	return r.feedPage(r.DB.Where("posts.user_id = ?", userID), page)
}

func (r *postRepo) CountPostsByUserID(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Post{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetFollowedPosts returns posts whose authors the given user follows
func (r *postRepo) GetFollowedPosts(userID uint, page int) (*models.FeedPage, error) {
	query := r.DB.
		Joins("JOIN follows ON follows.author_id = posts.user_id").
		Where("follows.user_id = ?", userID)
	return r.feedPage(query, page)
}
