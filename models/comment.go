package models

// Comment represents a user's comment on a post. Comments are immutable
// once created.
type Comment struct {
	Model
	Text   string `json:"text" gorm:"type:text;not null"`
	PostID uint   `json:"post_id" gorm:"not null;index"`
	UserID uint   `json:"user_id" gorm:"not null"`
	User   User   `json:"author" gorm:"foreignKey:UserID"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}
