// Package service contains the business logic layered between the HTTP
// handlers and the repositories.
package service

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// FollowService owns follow-graph mutations. All writes to the follows
// edge go through here, so invariants (no self-edges, target must exist)
// are enforced in one place.
type FollowService struct {
	followRepo  repository.FollowRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo:  followRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// resolveEdge maps the (requester, target) user pair onto their profile
// IDs, rejecting self-edges before touching storage.
func (s *FollowService) resolveEdge(ctx context.Context, requesterUserID, targetUserID uint) (requesterProfileID, targetProfileID uint, err error) {
	if requesterUserID == targetUserID {
		return 0, 0, models.NewInvalidOperationError("You cannot follow or unfollow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return 0, 0, err
	}

	requesterProfile, err := s.profileRepo.GetByUserID(ctx, requesterUserID)
	if err != nil {
		return 0, 0, err
	}
	targetProfile, err := s.profileRepo.GetByUserID(ctx, targetUserID)
	if err != nil {
		return 0, 0, err
	}
	return requesterProfile.ID, targetProfile.ID, nil
}

// Follow records that the requester follows the target user. Both users'
// follower and following views reflect the new edge immediately because
// they are derived from the same row.
func (s *FollowService) Follow(ctx context.Context, requesterUserID, targetUserID uint) error {
	requesterProfileID, targetProfileID, err := s.resolveEdge(ctx, requesterUserID, targetUserID)
	if err != nil {
		return err
	}

	if err := s.followRepo.Follow(ctx, requesterProfileID, targetProfileID); err != nil {
		middleware.FollowOperations.WithLabelValues("follow", "error").Inc()
		return err
	}
	middleware.FollowOperations.WithLabelValues("follow", "ok").Inc()

	cache.InvalidateProfileDetail(ctx, requesterProfileID)
	cache.InvalidateProfileDetail(ctx, targetProfileID)
	return nil
}

// Unfollow removes the requester's follow edge to the target user.
func (s *FollowService) Unfollow(ctx context.Context, requesterUserID, targetUserID uint) error {
	requesterProfileID, targetProfileID, err := s.resolveEdge(ctx, requesterUserID, targetUserID)
	if err != nil {
		return err
	}

	if err := s.followRepo.Unfollow(ctx, requesterProfileID, targetProfileID); err != nil {
		middleware.FollowOperations.WithLabelValues("unfollow", "error").Inc()
		return err
	}
	middleware.FollowOperations.WithLabelValues("unfollow", "ok").Inc()

	cache.InvalidateProfileDetail(ctx, requesterProfileID)
	cache.InvalidateProfileDetail(ctx, targetProfileID)
	return nil
}

// IsFollowing reports whether the requester currently follows the target.
func (s *FollowService) IsFollowing(ctx context.Context, requesterUserID, targetUserID uint) (bool, error) {
	if requesterUserID == targetUserID {
		return false, nil
	}
	requesterProfile, err := s.profileRepo.GetByUserID(ctx, requesterUserID)
	if err != nil {
		return false, err
	}
	targetProfile, err := s.profileRepo.GetByUserID(ctx, targetUserID)
	if err != nil {
		return false, err
	}
	return s.followRepo.IsFollowing(ctx, requesterProfile.ID, targetProfile.ID)
}
