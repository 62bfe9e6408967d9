package models

import (
	"time"
)

// MaxCommentLength is the number of characters kept when a comment is stored.
const MaxCommentLength = 255

// Comment belongs to a blog through BlogID only. The blog delete path removes comments
// before the blog row itself.
type Comment struct {
	CommentID string    `gorm:"primaryKey;type:varchar(36);uniqueIndex:idx_comment_identity,priority:3" json:"comment_id"`
	BlogID    string    `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_comment_identity,priority:1" json:"blog_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_comment_identity,priority:2" json:"user_id"`
	Username  string    `gorm:"not null" json:"username"` // snapshot taken at write time
	Comment   string    `gorm:"size:255;not null" json:"comment"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// OwnerID reports the author of the comment. A nil comment has no owner.
func (c *Comment) OwnerID() (int64, bool) {
	if c == nil {
		return 0, false
	}
	return c.UserID, true
}
