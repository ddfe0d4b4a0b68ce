package models

import "time"

// Follow is a directed subscription from one user to an author. The
// composite unique index keeps the pair single even under concurrent
// follow requests; the check constraint added in db.migrate rejects
// self-follows at the storage layer as well.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_follow_pair"`
	AuthorID  uint      `json:"author_id" gorm:"not null;uniqueIndex:idx_follow_pair"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
