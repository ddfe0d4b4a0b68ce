package models

// Post is a published entry in the feed. Group and image are optional;
// the author is required and is the only user allowed to edit.
type Post struct {
	Model
	Text         string `json:"text" gorm:"type:text;not null"`
	UserID       uint   `json:"user_id" gorm:"not null;index"`
	User         User   `json:"author" gorm:"foreignKey:UserID"`
	GroupID      *uint  `json:"group_id,omitempty" gorm:"index"`
	Group        *Group `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	ImageURL     string `json:"image_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// FeedPage is one page of an ordered post collection
type FeedPage struct {
	Posts     []Post `json:"posts"`
	Page      int    `json:"page"`
	PageCount int    `json:"page_count"`
	Total     int64  `json:"total"`
}

type ProfileResponse struct {
	Author    UserResponse `json:"author"`
	PostCount int64        `json:"post_count"`
	Following bool         `json:"following"`
	FeedPage
}

type PostDetailResponse struct {
	Post       Post      `json:"post"`
	PostsCount int64     `json:"posts_count"`
	Comments   []Comment `json:"comments"`
}
