// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment is free text attached to a post. Comments are create-only;
// there is no edit flow.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Text      string    `gorm:"not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

// OwnerID implements permissions.Object.
func (c *Comment) OwnerID() uint {
	return c.UserID
}
