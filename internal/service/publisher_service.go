package service

import (
	"context"
	"time"

	"ripple/internal/middleware"
	"ripple/internal/repository"
)

// PublisherService runs the scheduled publishing sweep: every
// unpublished post whose publish date has arrived flips to published.
// The sweep is a single idempotent UPDATE, so overlapping or repeated
// runs publish each post exactly once.
type PublisherService struct {
	postRepo repository.PostRepository
}

// NewPublisherService returns a new PublisherService.
func NewPublisherService(postRepo repository.PostRepository) *PublisherService {
	return &PublisherService{postRepo: postRepo}
}

// PublishDue publishes all posts due as of now and returns how many
// were flipped. "Today" is the UTC day, matching how publish dates are
// parsed and stored.
func (s *PublisherService) PublishDue(ctx context.Context) (int64, error) {
	count, err := s.postRepo.PublishDue(ctx, time.Now().UTC())
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "scheduled publish sweep failed", "error", err)
		return 0, err
	}
	if count > 0 {
		middleware.PostsPublished.Add(float64(count))
		middleware.Logger.InfoContext(ctx, "published scheduled posts", "count", count)
	}
	return count, nil
}
