package server

import (
	"time"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts. The feed contains published posts by
// the requester and by everyone they follow, optionally narrowed by
// hashtag (comma-separated), created_at and updated_at (YYYY-MM-DD).
func (s *Server) GetPosts(c *fiber.Ctx) error {
	createdOn, err := s.parseDayQuery(c, "created_at")
	if err != nil {
		return nil
	}
	updatedOn, err := s.parseDayQuery(c, "updated_at")
	if err != nil {
		return nil
	}

	filters := repository.PostFilters{
		Hashtags:  splitQueryList(c.Query("hashtag")),
		CreatedOn: createdOn,
		UpdatedOn: updatedOn,
	}

	p := parsePagination(c, 20)
	posts, err := s.postService.ListFeed(c.Context(), currentUserID(c), filters, p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(posts)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title       string   `json:"title"`
		Text        string   `json:"text"`
		ImageURL    string   `json:"image_url"`
		Hashtags    []string `json:"hashtags"`
		PublishDate *string  `json:"publish_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.CreatePostInput{
		UserID:   currentUserID(c),
		Title:    req.Title,
		Text:     req.Text,
		ImageURL: req.ImageURL,
		Hashtags: req.Hashtags,
	}
	if req.PublishDate != nil {
		day, err := time.Parse("2006-01-02", *req.PublishDate)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid publish_date, expected YYYY-MM-DD"))
		}
		in.PublishDate = &day
	}

	post, err := s.postService.CreatePost(c.Context(), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       *string  `json:"title"`
		Text        *string  `json:"text"`
		ImageURL    *string  `json:"image_url"`
		Hashtags    []string `json:"hashtags"`
		PublishDate *string  `json:"publish_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.UpdatePostInput{
		Title:    req.Title,
		Text:     req.Text,
		ImageURL: req.ImageURL,
		Hashtags: req.Hashtags,
	}
	if req.PublishDate != nil {
		day, err := time.Parse("2006-01-02", *req.PublishDate)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid publish_date, expected YYYY-MM-DD"))
		}
		in.PublishDate = &day
	}

	post, err := s.postService.UpdatePost(c.Context(), currentUserID(c), id, in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), currentUserID(c), id); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LikePost handles POST /api/posts/:id/like. A second like on the same
// post is a 409, not a no-op.
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.LikePost(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.UnlikePost(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}
