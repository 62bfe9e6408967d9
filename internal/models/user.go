package models

import (
	"time"
)

// User is keyed by the identity provider's numeric account id.
type User struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Username  string    `gorm:"not null" json:"username"` // refreshed on every login
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// No DeletedAt: users are never removed
}
