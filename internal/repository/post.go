package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations,
// including the like edge (unique per user-post pair) and the scheduled
// publish sweep.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	ListVisible(ctx context.Context, requesterUserID, requesterProfileID uint, f PostFilters, limit, offset int) ([]*models.Post, error)
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	TitlesByUser(ctx context.Context, userID uint) ([]string, error)
	PublishDue(ctx context.Context, today time.Time) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post

	fetch := func() error {
		err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			First(&post, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	}

	var err error
	if currentUserID == 0 {
		// Anonymous view carries no per-requester fields, safe to cache.
		err = cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

// ListVisible computes the posts feed: published posts whose owner is the
// requester or someone the requester follows, narrowed by the optional
// filters, newest first.
func (r *postRepository) ListVisible(ctx context.Context, requesterUserID, requesterProfileID uint, f PostFilters, limit, offset int) ([]*models.Post, error) {
	followeeOwners := r.db.Model(&models.Profile{}).
		Select("profiles.user_id").
		Joins("JOIN follows ON follows.followee_profile_id = profiles.id").
		Where("follows.follower_profile_id = ?", requesterProfileID)

	q := r.applyPostDetails(r.db.WithContext(ctx), requesterUserID).
		Preload("User").
		Where("posts.published = ?", true).
		Where("posts.user_id = ? OR posts.user_id IN (?)", requesterUserID, followeeOwners)

	if len(f.Hashtags) > 0 {
		q = q.Where(hashtagCondition(r.db, f.Hashtags))
	}
	if f.CreatedOn != nil {
		q = whereDay(q, "posts.created_at", *f.CreatedOn)
	}
	if f.UpdatedOn != nil {
		q = whereDay(q, "posts.updated_at", *f.UpdatedOn)
	}

	var posts []*models.Post
	err := q.Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// hashtagCondition matches the comma-separated hashtag column against any
// of the given tags. Wrapping both sides in commas turns substring LIKE
// into whole-tag membership. Tags are stored lowercase, so the filter
// folds case before matching.
func hashtagCondition(db *gorm.DB, tags []string) *gorm.DB {
	cond := db.Where("(',' || posts.hashtags || ',') LIKE ?", tagPattern(tags[0]))
	for _, tag := range tags[1:] {
		cond = cond.Or("(',' || posts.hashtags || ',') LIKE ?", tagPattern(tag))
	}
	return cond
}

func tagPattern(tag string) string {
	return "%," + strings.ToLower(strings.TrimSpace(tag)) + ",%"
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if currentUserID != 0 {
		return db.Model(&models.Post{}).
			Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Model(&models.Post{}).Select(selectQuery)
}

// Like inserts the (user, post) like row. The unique index resolves
// concurrent duplicates; the loser surfaces as AlreadyLiked.
func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	var post models.Post
	if err := r.db.WithContext(ctx).Select("id").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return models.NewInternalError(err)
	}

	like := &models.Like{UserID: userID, PostID: postID}
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewAlreadyLikedError()
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

// Unlike hard-deletes the like row. Zero rows affected means there was
// nothing to retract.
func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotLikedError()
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// TitlesByUser returns the titles of a user's posts, newest first. Used
// by the profile detail view.
func (r *postRepository) TitlesByUser(ctx context.Context, userID uint) ([]string, error) {
	var titles []string
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("title", &titles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return titles, nil
}

// PublishDue flips every unpublished post whose publish date has arrived.
// The predicate makes the sweep idempotent: once published, a post drops
// out of the candidate set. The day boundary is taken in UTC, matching
// how publish dates are parsed and stored.
func (r *postRepository) PublishDue(ctx context.Context, today time.Time) (int64, error) {
	_, endOfDay := dayRange(today.UTC())
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("published = ? AND publish_date < ?", false, endOfDay).
		Update("published", true)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}
