package repository

import (
	"context"
	"errors"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	Delete(ctx context.Context, id uint) error
	ListForPost(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error)
	ListVisible(ctx context.Context, requesterUserID, requesterProfileID uint, f CommentFilters, limit, offset int) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) ListForPost(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// ListVisible computes the comments feed: comments written by the
// requester or by someone the requester follows, narrowed by the
// optional filters, newest first.
func (r *commentRepository) ListVisible(ctx context.Context, requesterUserID, requesterProfileID uint, f CommentFilters, limit, offset int) ([]models.Comment, error) {
	followeeOwners := r.db.Model(&models.Profile{}).
		Select("profiles.user_id").
		Joins("JOIN follows ON follows.followee_profile_id = profiles.id").
		Where("follows.follower_profile_id = ?", requesterProfileID)

	q := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Preload("User").
		Preload("Post").
		Where("comments.user_id = ? OR comments.user_id IN (?)", requesterUserID, followeeOwners)

	if f.PostTitle != "" {
		posts := r.db.Model(&models.Post{}).
			Select("id").
			Where("title = ?", f.PostTitle)
		q = q.Where("comments.post_id IN (?)", posts)
	}
	if f.Text != "" {
		q = whereContainsFold(q, "comments.text", f.Text)
	}

	var comments []models.Comment
	err := q.Order("comments.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
