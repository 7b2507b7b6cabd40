package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/permissions"
	"ripple/internal/repository"
)

// CommentService owns comment creation and deletion and the comments
// feed. Comments are create-and-delete only; there is no edit.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
	perms       *permissions.Registry
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, profileRepo repository.ProfileRepository, perms *permissions.Registry) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		profileRepo: profileRepo,
		perms:       perms,
	}
}

// CreateComment adds a comment to a post. The post must be visible to
// the commenter: published, or an own draft.
func (s *CommentService) CreateComment(ctx context.Context, userID, postID uint, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Comment text is required")
	}

	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if !post.Published && post.UserID != userID {
		return nil, models.NewNotFoundError("Post", postID)
	}

	comment := &models.Comment{
		UserID: userID,
		PostID: postID,
		Text:   text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment removes a comment. Owner only.
func (s *CommentService) DeleteComment(ctx context.Context, requesterUserID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !s.perms.Allowed("comment", requesterUserID, comment, permissions.OpUnsafe) {
		return models.NewUnauthorizedError("You can only delete your own comments")
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// ListForPost returns the comments on a single post, newest first.
func (s *CommentService) ListForPost(ctx context.Context, requesterUserID, postID uint, limit, offset int) ([]models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID, requesterUserID)
	if err != nil {
		return nil, err
	}
	if !post.Published && post.UserID != requesterUserID {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return s.commentRepo.ListForPost(ctx, postID, limit, offset)
}

// ListFeed returns the requester's comments feed: comments written by
// themselves and by everyone they follow, newest first.
func (s *CommentService) ListFeed(ctx context.Context, requesterUserID uint, f repository.CommentFilters, limit, offset int) ([]models.Comment, error) {
	requesterProfile, err := s.profileRepo.GetByUserID(ctx, requesterUserID)
	if err != nil {
		return nil, err
	}
	return s.commentRepo.ListVisible(ctx, requesterUserID, requesterProfile.ID, f, limit, offset)
}
