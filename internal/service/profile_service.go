package service

import (
	"context"
	"time"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/permissions"
	"ripple/internal/repository"
)

// ProfileSummary is the compact profile representation used by the
// profiles feed.
type ProfileSummary struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	Bio            string `json:"bio,omitempty"`
	Location       string `json:"location,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
}

// ProfileDetail is the full profile view: owner attributes plus the
// derived follow-graph neighborhood, all by name.
type ProfileDetail struct {
	ID             uint                `json:"id"`
	Username       string              `json:"username"`
	Bio            string              `json:"bio,omitempty"`
	BirthDate      *time.Time          `json:"birth_date,omitempty"`
	Location       string              `json:"location,omitempty"`
	Website        string              `json:"website,omitempty"`
	Phone          string              `json:"phone,omitempty"`
	ImageURL       string              `json:"image_url,omitempty"`
	SocialLinks    []models.SocialLink `json:"social_links"`
	Followers      []string            `json:"followers"`
	Following      []string            `json:"following"`
	PostTitles     []string            `json:"post_titles"`
	FollowersCount int64               `json:"followers_count"`
	FollowingCount int64               `json:"following_count"`
}

// UpdateProfileInput carries the mutable profile fields. Nil pointers
// mean "leave unchanged".
type UpdateProfileInput struct {
	Bio       *string
	BirthDate *time.Time
	Location  *string
	Website   *string
	Phone     *string
	ImageURL  *string
}

// profileGraph decorates a profile with its follow-graph neighborhood so
// the permission policy can evaluate reads without storage access.
type profileGraph struct {
	*models.Profile
	followers []uint
	following []uint
}

func (g *profileGraph) FollowerOwnerIDs() []uint  { return g.followers }
func (g *profileGraph) FollowingOwnerIDs() []uint { return g.following }

// ProfileService assembles profile views and applies the profile
// visibility policy.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	followRepo  repository.FollowRepository
	postRepo    repository.PostRepository
	perms       *permissions.Registry
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, followRepo repository.FollowRepository, postRepo repository.PostRepository, perms *permissions.Registry) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		followRepo:  followRepo,
		postRepo:    postRepo,
		perms:       perms,
	}
}

// ListProfiles returns the requester's profile feed: themselves plus
// everyone connected to them in either direction of the follow graph.
func (s *ProfileService) ListProfiles(ctx context.Context, requesterUserID uint, f repository.ProfileFilters, limit, offset int) ([]ProfileSummary, error) {
	requesterProfile, err := s.profileRepo.GetByUserID(ctx, requesterUserID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profileRepo.ListVisible(ctx, requesterProfile.ID, requesterUserID, f, limit, offset)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProfileSummary, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		followers, following, err := s.followRepo.Counts(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ProfileSummary{
			ID:             p.ID,
			Username:       p.User.Username,
			Bio:            p.Bio,
			Location:       p.Location,
			ImageURL:       p.ImageURL,
			FollowersCount: followers,
			FollowingCount: following,
		})
	}
	return summaries, nil
}

// GetProfileDetail returns the full profile view, provided the requester
// is the owner or a graph neighbor. The assembled view is cached; every
// mutation of the profile or its edges invalidates it.
func (s *ProfileService) GetProfileDetail(ctx context.Context, requesterUserID, profileID uint) (*ProfileDetail, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	followerOwners, err := s.followRepo.FollowerOwnerIDs(ctx, profileID)
	if err != nil {
		return nil, err
	}
	followingOwners, err := s.followRepo.FollowingOwnerIDs(ctx, profileID)
	if err != nil {
		return nil, err
	}

	graph := &profileGraph{Profile: profile, followers: followerOwners, following: followingOwners}
	if !s.perms.Allowed("profile", requesterUserID, graph, permissions.OpSafe) {
		return nil, models.NewUnauthorizedError("You do not have permission to view this profile")
	}

	var detail ProfileDetail
	err = cache.Aside(ctx, cache.ProfileDetailKey(profileID), &detail, cache.ProfileDetailTTL, func() error {
		followerNames, err := s.followRepo.FollowerUsernames(ctx, profileID)
		if err != nil {
			return err
		}
		followingNames, err := s.followRepo.FollowingUsernames(ctx, profileID)
		if err != nil {
			return err
		}
		titles, err := s.postRepo.TitlesByUser(ctx, profile.UserID)
		if err != nil {
			return err
		}

		detail = ProfileDetail{
			ID:             profile.ID,
			Username:       profile.User.Username,
			Bio:            profile.Bio,
			BirthDate:      profile.BirthDate,
			Location:       profile.Location,
			Website:        profile.Website,
			Phone:          profile.Phone,
			ImageURL:       profile.ImageURL,
			SocialLinks:    profile.SocialLinks,
			Followers:      followerNames,
			Following:      followingNames,
			PostTitles:     titles,
			FollowersCount: int64(len(followerNames)),
			FollowingCount: int64(len(followingNames)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetMyProfile returns the requester's own profile record.
func (s *ProfileService) GetMyProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// UpdateMyProfile applies the provided fields to the requester's profile.
func (s *ProfileService) UpdateMyProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500
	if in.Bio != nil {
		if len(*in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		profile.Bio = *in.Bio
	}
	if in.BirthDate != nil {
		if in.BirthDate.After(time.Now()) {
			return nil, models.NewValidationError("Birth date cannot be in the future")
		}
		profile.BirthDate = in.BirthDate
	}
	if in.Location != nil {
		profile.Location = *in.Location
	}
	if in.Website != nil {
		profile.Website = *in.Website
	}
	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if in.ImageURL != nil {
		profile.ImageURL = *in.ImageURL
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AddSocialLink appends a social link to the requester's profile.
func (s *ProfileService) AddSocialLink(ctx context.Context, userID uint, platform, url string) (*models.Profile, error) {
	if platform == "" || url == "" {
		return nil, models.NewValidationError("Platform and URL are required")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.AddSocialLink(ctx, profile.ID, platform, url); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByID(ctx, profile.ID)
}
