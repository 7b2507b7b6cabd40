package models

import (
	"time"
)

// Follow is one directed edge in the social graph: the follower profile
// follows the followee profile. This table is the single canonical
// representation of the relationship; "following" is the forward query
// and "followers" is the reverse query over the same rows.
//
// The composite unique index makes duplicate edges impossible at the
// storage level, which is what keeps concurrent follow attempts safe:
// the losing insert surfaces as a duplicate-key error and is translated
// to AlreadyFollowing.
type Follow struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	FollowerProfileID uint      `gorm:"not null;uniqueIndex:idx_follower_followee" json:"follower_profile_id"`
	FolloweeProfileID uint      `gorm:"not null;uniqueIndex:idx_follower_followee" json:"followee_profile_id"`
	CreatedAt         time.Time `json:"created_at"`

	Follower Profile `gorm:"foreignKey:FollowerProfileID;constraint:OnDelete:CASCADE" json:"-"`
	Followee Profile `gorm:"foreignKey:FolloweeProfileID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
