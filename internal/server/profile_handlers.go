package server

import (
	"time"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfiles handles GET /api/profiles. The feed is scoped to the
// requester's follow-graph neighborhood and optionally narrowed by
// username, birth_date (YYYY-MM-DD) and location query parameters.
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	birthDate, err := s.parseDayQuery(c, "birth_date")
	if err != nil {
		return nil
	}

	filters := repository.ProfileFilters{
		OwnerUsernames: splitQueryList(c.Query("username")),
		BirthDate:      birthDate,
		Location:       c.Query("location"),
	}

	p := parsePagination(c, 20)
	profiles, err := s.profileService.ListProfiles(c.Context(), currentUserID(c), filters, p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfile handles GET /api/profiles/:id. Returns the full detail
// view when the requester is the owner or a graph neighbor.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.profileService.GetProfileDetail(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(detail)
}

// GetMyProfile handles GET /api/profiles/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetMyProfile(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/profiles/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Bio       *string `json:"bio"`
		BirthDate *string `json:"birth_date"`
		Location  *string `json:"location"`
		Website   *string `json:"website"`
		Phone     *string `json:"phone"`
		ImageURL  *string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.UpdateProfileInput{
		Bio:      req.Bio,
		Location: req.Location,
		Website:  req.Website,
		Phone:    req.Phone,
		ImageURL: req.ImageURL,
	}
	if req.BirthDate != nil {
		day, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid birth_date, expected YYYY-MM-DD"))
		}
		in.BirthDate = &day
	}

	profile, err := s.profileService.UpdateMyProfile(c.Context(), currentUserID(c), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profile)
}

// AddSocialLink handles POST /api/profiles/me/social-links
func (s *Server) AddSocialLink(c *fiber.Ctx) error {
	var req struct {
		Platform string `json:"platform"`
		URL      string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddSocialLink(c.Context(), currentUserID(c), req.Platform, req.URL)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}
