package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	AddSocialLink(ctx context.Context, profileID uint, platform, url string) error
	ListVisible(ctx context.Context, requesterProfileID, requesterUserID uint, f ProfileFilters, limit, offset int) ([]models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewValidationError("Profile already exists for this user")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("SocialLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("SocialLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile for user", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfileDetail(ctx, profile.ID)
	return nil
}

// AddSocialLink appends a link after the profile's current last position.
// The read and insert share a transaction so concurrent appends cannot
// claim the same position.
func (r *profileRepository) AddSocialLink(ctx context.Context, profileID uint, platform, url string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos int
		if err := tx.Model(&models.SocialLink{}).
			Where("profile_id = ?", profileID).
			Select("COALESCE(MAX(position), -1)").
			Scan(&maxPos).Error; err != nil {
			return err
		}
		link := &models.SocialLink{
			ProfileID: profileID,
			Platform:  platform,
			URL:       url,
			Position:  maxPos + 1,
		}
		return tx.Create(link).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfileDetail(ctx, profileID)
	return nil
}

// ListVisible computes the profiles feed for a requester: their own
// profile plus everyone connected to them in either direction of the
// follow graph, narrowed by the optional filters. The candidate set is a
// single SELECT with IN-subqueries, so rows matching several clauses
// appear once.
func (r *profileRepository) ListVisible(ctx context.Context, requesterProfileID, requesterUserID uint, f ProfileFilters, limit, offset int) ([]models.Profile, error) {
	followees := r.db.Model(&models.Follow{}).
		Select("followee_profile_id").
		Where("follower_profile_id = ?", requesterProfileID)
	followers := r.db.Model(&models.Follow{}).
		Select("follower_profile_id").
		Where("followee_profile_id = ?", requesterProfileID)

	q := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Preload("User").
		Preload("SocialLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("profiles.user_id = ? OR profiles.id IN (?) OR profiles.id IN (?)",
			requesterUserID, followees, followers)

	if len(f.OwnerUsernames) > 0 {
		owners := r.db.Model(&models.User{}).
			Select("id").
			Where("username IN ?", f.OwnerUsernames)
		q = q.Where("profiles.user_id IN (?)", owners)
	}
	if f.BirthDate != nil {
		q = whereDay(q, "profiles.birth_date", *f.BirthDate)
	}
	if f.Location != "" {
		q = whereContainsFold(q, "profiles.location", f.Location)
	}

	var profiles []models.Profile
	err := q.Order("profiles.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&profiles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}
