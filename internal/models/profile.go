package models

import (
	"time"
)

// Profile holds the public-facing attributes of a user. Exactly one
// profile exists per user.
//
// Follow relationships are NOT fields on this struct. They live in the
// follows edge table (see Follow) and are derived by query, so the
// follower and following views can never disagree.
type Profile struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Bio       string     `json:"bio"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Location  string     `json:"location"`
	Website   string     `json:"website"`
	Phone     string     `json:"phone"`
	ImageURL  string     `json:"image_url"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	User        User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SocialLinks []SocialLink `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"social_links,omitempty"`
}

// OwnerID implements permissions.Object.
func (p *Profile) OwnerID() uint {
	return p.UserID
}

// SocialLink is a single {platform, url} entry on a profile. Position
// preserves insertion order.
type SocialLink struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProfileID uint   `gorm:"not null;index" json:"-"`
	Platform  string `gorm:"not null" json:"platform"`
	URL       string `gorm:"not null" json:"url"`
	Position  int    `gorm:"not null;default:0" json:"-"`
}
