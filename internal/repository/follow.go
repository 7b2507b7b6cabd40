package repository

import (
	"context"
	"errors"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// FollowRepository is the single writer of the follows edge table. The
// edge is stored once per (follower, followee) pair; the follower and
// following views are forward and reverse queries over the same rows, so
// the two directions cannot drift. Concurrent duplicate inserts are
// resolved by the composite unique index.
type FollowRepository interface {
	Follow(ctx context.Context, followerProfileID, followeeProfileID uint) error
	Unfollow(ctx context.Context, followerProfileID, followeeProfileID uint) error
	IsFollowing(ctx context.Context, followerProfileID, followeeProfileID uint) (bool, error)
	FollowingProfileIDs(ctx context.Context, profileID uint) ([]uint, error)
	FollowerProfileIDs(ctx context.Context, profileID uint) ([]uint, error)
	FollowingOwnerIDs(ctx context.Context, profileID uint) ([]uint, error)
	FollowerOwnerIDs(ctx context.Context, profileID uint) ([]uint, error)
	FollowingUsernames(ctx context.Context, profileID uint) ([]string, error)
	FollowerUsernames(ctx context.Context, profileID uint) ([]string, error)
	Counts(ctx context.Context, profileID uint) (followers int64, following int64, err error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(ctx context.Context, followerProfileID, followeeProfileID uint) error {
	edge := &models.Follow{
		FollowerProfileID: followerProfileID,
		FolloweeProfileID: followeeProfileID,
	}
	if err := r.db.WithContext(ctx).Create(edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewAlreadyFollowingError()
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Unfollow(ctx context.Context, followerProfileID, followeeProfileID uint) error {
	res := r.db.WithContext(ctx).
		Where("follower_profile_id = ? AND followee_profile_id = ?", followerProfileID, followeeProfileID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFollowingError()
	}
	return nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerProfileID, followeeProfileID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_profile_id = ? AND followee_profile_id = ?", followerProfileID, followeeProfileID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// FollowingProfileIDs returns the profile IDs this profile follows.
func (r *followRepository) FollowingProfileIDs(ctx context.Context, profileID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_profile_id = ?", profileID).
		Pluck("followee_profile_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// FollowerProfileIDs returns the profile IDs following this profile.
func (r *followRepository) FollowerProfileIDs(ctx context.Context, profileID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("followee_profile_id = ?", profileID).
		Pluck("follower_profile_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// FollowingOwnerIDs returns the user IDs owning the profiles this profile
// follows. Used by the post and comment feeds.
func (r *followRepository) FollowingOwnerIDs(ctx context.Context, profileID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Joins("JOIN follows ON follows.followee_profile_id = profiles.id").
		Where("follows.follower_profile_id = ?", profileID).
		Pluck("profiles.user_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// FollowerOwnerIDs returns the user IDs owning the profiles that follow
// this profile. Used by the profile permission policy.
func (r *followRepository) FollowerOwnerIDs(ctx context.Context, profileID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Joins("JOIN follows ON follows.follower_profile_id = profiles.id").
		Where("follows.followee_profile_id = ?", profileID).
		Pluck("profiles.user_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// FollowingUsernames returns the usernames of the users this profile
// follows, for the profile detail view.
func (r *followRepository) FollowingUsernames(ctx context.Context, profileID uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Joins("JOIN follows ON follows.followee_profile_id = profiles.id").
		Where("follows.follower_profile_id = ?", profileID).
		Pluck("users.username", &names).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return names, nil
}

// FollowerUsernames returns the usernames of the users following this
// profile, for the profile detail view.
func (r *followRepository) FollowerUsernames(ctx context.Context, profileID uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Joins("JOIN follows ON follows.follower_profile_id = profiles.id").
		Where("follows.followee_profile_id = ?", profileID).
		Pluck("users.username", &names).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return names, nil
}

func (r *followRepository) Counts(ctx context.Context, profileID uint) (int64, int64, error) {
	var followers, following int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("followee_profile_id = ?", profileID).
		Count(&followers).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_profile_id = ?", profileID).
		Count(&following).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	return followers, following, nil
}
