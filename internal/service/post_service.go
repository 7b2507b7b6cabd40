package service

import (
	"context"
	"strings"
	"time"

	"ripple/internal/models"
	"ripple/internal/permissions"
	"ripple/internal/repository"
)

// PostService owns post lifecycle logic: creation with the scheduled
// publishing rule, owner-only mutation, the visibility feed and the like
// edge.
type PostService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
	perms       *permissions.Registry
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, profileRepo repository.ProfileRepository, perms *permissions.Registry) *PostService {
	return &PostService{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		perms:       perms,
	}
}

// CreatePostInput carries the fields for a new post. A nil PublishDate
// means publish today.
type CreatePostInput struct {
	UserID      uint
	Title       string
	Text        string
	ImageURL    string
	Hashtags    []string
	PublishDate *time.Time
}

// UpdatePostInput carries the mutable post fields. Nil pointers mean
// "leave unchanged".
type UpdatePostInput struct {
	Title       *string
	Text        *string
	ImageURL    *string
	Hashtags    []string
	PublishDate *time.Time
}

// NormalizeHashtags lowercases, trims and deduplicates tags, preserving
// first-seen order. The result is stored as a comma-separated string.
func NormalizeHashtags(tags []string) string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return strings.Join(out, ",")
}

// dueNow reports whether a publish date falls on today or earlier.
// Comparison is at day granularity. Publish dates parse as UTC midnight,
// so the day boundary is taken in UTC regardless of the host timezone.
func dueNow(publishDate, now time.Time) bool {
	y, m, d := now.UTC().Date()
	endOfToday := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return publishDate.Before(endOfToday)
}

// CreatePost creates a post. Posts dated today or earlier go live
// immediately; future-dated posts stay unpublished until the scheduled
// publisher picks them up.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}

	now := time.Now()
	publishDate := now
	if in.PublishDate != nil {
		publishDate = *in.PublishDate
	}

	post := &models.Post{
		UserID:      in.UserID,
		Title:       in.Title,
		Text:        in.Text,
		ImageURL:    in.ImageURL,
		Hashtags:    NormalizeHashtags(in.Hashtags),
		PublishDate: publishDate,
		Published:   dueNow(publishDate, now),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// GetPost returns a single post. Unpublished posts are visible only to
// their owner; everyone else gets not-found, so drafts do not leak their
// existence.
func (s *PostService) GetPost(ctx context.Context, requesterUserID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, requesterUserID)
	if err != nil {
		return nil, err
	}
	if !post.Published && post.UserID != requesterUserID {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}

// UpdatePost applies the provided fields to the post. Only the owner may
// modify a post, and published posts never revert to drafts: the publish
// date is frozen once the post is live.
func (s *PostService) UpdatePost(ctx context.Context, requesterUserID, postID uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, requesterUserID)
	if err != nil {
		return nil, err
	}
	if !s.perms.Allowed("post", requesterUserID, post, permissions.OpUnsafe) {
		return nil, models.NewUnauthorizedError("You can only modify your own posts")
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, models.NewValidationError("Title is required")
		}
		post.Title = *in.Title
	}
	if in.Text != nil {
		post.Text = *in.Text
	}
	if in.ImageURL != nil {
		post.ImageURL = *in.ImageURL
	}
	if in.Hashtags != nil {
		post.Hashtags = NormalizeHashtags(in.Hashtags)
	}
	if in.PublishDate != nil {
		if post.Published {
			return nil, models.NewValidationError("Cannot change the publish date of a published post")
		}
		post.PublishDate = *in.PublishDate
		post.Published = dueNow(post.PublishDate, time.Now())
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID, requesterUserID)
}

// DeletePost removes the post and its likes and comments. Owner only.
func (s *PostService) DeletePost(ctx context.Context, requesterUserID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, requesterUserID)
	if err != nil {
		return err
	}
	if !s.perms.Allowed("post", requesterUserID, post, permissions.OpUnsafe) {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}

// ListFeed returns the requester's posts feed: published posts by
// themselves and by everyone they follow, newest first.
func (s *PostService) ListFeed(ctx context.Context, requesterUserID uint, f repository.PostFilters, limit, offset int) ([]*models.Post, error) {
	requesterProfile, err := s.profileRepo.GetByUserID(ctx, requesterUserID)
	if err != nil {
		return nil, err
	}
	return s.postRepo.ListVisible(ctx, requesterUserID, requesterProfile.ID, f, limit, offset)
}

// LikePost records that the user likes the post. At most one like per
// (user, post) pair; a second like is a conflict, not a no-op.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.GetPost(ctx, userID, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID, userID)
}

// UnlikePost retracts the user's like. Retracting a like that does not
// exist is a conflict.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.GetPost(ctx, userID, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID, userID)
}
