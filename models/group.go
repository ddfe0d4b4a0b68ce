package models

// Group is a named category posts can optionally belong to. Groups are
// seeded by admins; the API never mutates them.
type Group struct {
	Model
	Title       string `json:"title" gorm:"not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`
}
