package repository

import (
	"context"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteUserCascadesOtherUsersEngagement(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	seedFollow(t, db, bob, alice)
	seedFollow(t, db, carol, bob)

	post := createPost(t, posts, alice, "goodbye", true, time.Now())
	require.NoError(t, posts.Like(ctx, bob.ID, post.ID))
	require.NoError(t, comments.Create(ctx, &models.Comment{
		UserID: bob.ID, PostID: post.ID, Text: "so long",
	}))

	require.NoError(t, users.Delete(ctx, alice.ID))

	var likes, leftover int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likes).Error)
	assert.Zero(t, likes)
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&leftover).Error)
	assert.Zero(t, leftover)

	// carol follows bob, so bob's comments land in her feed; the comment
	// on the deleted post must not linger there as an orphan.
	feed, err := comments.ListVisible(ctx, carol.ID, carol.Profile.ID, CommentFilters{}, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestDeleteUserKeepsOthersContent(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	kept := createPost(t, posts, bob, "staying", true, time.Now())
	require.NoError(t, posts.Like(ctx, bob.ID, kept.ID))

	require.NoError(t, users.Delete(ctx, alice.ID))

	var likes int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", kept.ID).Count(&likes).Error)
	assert.Equal(t, int64(1), likes)
}
