package models

import (
	"time"
)

// Like records that a user liked a post. The combination of UserID and
// PostID must be unique: existence of the row is the signal, there is no
// stored negative state. A dislike deletes the row.
//
// Likes are hard-deleted on purpose. A soft-delete column would leave a
// tombstone that collides with the unique index when the user likes the
// same post again.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
