package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/profiles/:userId/follow. The target is
// addressed by user ID; the edge lands between the two profiles.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.followService.Follow(c.Context(), currentUserID(c), targetUserID); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"following": true,
	})
}

// UnfollowUser handles DELETE /api/profiles/:userId/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(c.Context(), currentUserID(c), targetUserID); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"following": false,
	})
}

// GetFollowStatus handles GET /api/profiles/:userId/follow
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	following, err := s.followService.IsFollowing(c.Context(), currentUserID(c), targetUserID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"following": following,
	})
}
