package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Post is a piece of content owned by a user. Posts are created
// unpublished with a target publish date and flip to published exactly
// once, either immediately (publish date is today or earlier) or by the
// scheduled publisher. Published never reverts.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Text        string    `json:"text"`
	ImageURL    string    `json:"image_url"`
	Hashtags    string    `json:"hashtags"`
	Published   bool      `gorm:"not null;default:false" json:"published"`
	PublishDate time.Time `gorm:"not null" json:"publish_date"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"-" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"-" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool           `gorm:"-" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// OwnerID implements permissions.Object.
func (p *Post) OwnerID() uint {
	return p.UserID
}

// HashtagList splits the comma-separated hashtag string into trimmed,
// lower-cased tags. Empty segments are dropped.
func (p *Post) HashtagList() []string {
	if p.Hashtags == "" {
		return nil
	}
	parts := strings.Split(p.Hashtags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
