package models

import (
	"time"
)

type Blog struct {
	BlogID    string    `gorm:"primaryKey;type:varchar(36)" json:"blog_id"` // UUIDv4
	BlogTitle string    `gorm:"not null" json:"blog_title"`
	BlogText  string    `gorm:"type:text" json:"blog_text"`
	CreatedBy int64     `gorm:"not null;index" json:"created_by"` // immutable after create
	User      User      `gorm:"foreignKey:CreatedBy;references:UserID" json:"user"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

// OwnerID reports the creator of the blog. A nil blog has no owner.
func (b *Blog) OwnerID() (int64, bool) {
	if b == nil {
		return 0, false
	}
	return b.CreatedBy, true
}
