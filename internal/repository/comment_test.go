package repository

import (
	"context"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentFeedFollowsTheGraph(t *testing.T) {
	db := testDB(t)
	repo := NewCommentRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	seedFollow(t, db, alice, bob)

	post := createPost(t, posts, bob, "thread", true, time.Now())
	require.NoError(t, repo.Create(ctx, &models.Comment{UserID: bob.ID, PostID: post.ID, Text: "by bob"}))
	require.NoError(t, repo.Create(ctx, &models.Comment{UserID: carol.ID, PostID: post.ID, Text: "by carol"}))
	require.NoError(t, repo.Create(ctx, &models.Comment{UserID: alice.ID, PostID: post.ID, Text: "by alice"}))

	comments, err := repo.ListVisible(ctx, alice.ID, alice.Profile.ID, CommentFilters{}, 20, 0)
	require.NoError(t, err)

	texts := make([]string, 0, len(comments))
	for _, c := range comments {
		texts = append(texts, c.Text)
	}
	// Carol's comment is invisible: alice does not follow her.
	assert.ElementsMatch(t, []string{"by bob", "by alice"}, texts)
}

func TestCommentFeedFilters(t *testing.T) {
	db := testDB(t)
	repo := NewCommentRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")

	recipes := createPost(t, posts, alice, "recipes", true, time.Now())
	travel := createPost(t, posts, alice, "travel", true, time.Now())
	require.NoError(t, repo.Create(ctx, &models.Comment{UserID: alice.ID, PostID: recipes.ID, Text: "Needs more salt"}))
	require.NoError(t, repo.Create(ctx, &models.Comment{UserID: alice.ID, PostID: travel.ID, Text: "Pack light"}))

	comments, err := repo.ListVisible(ctx, alice.ID, alice.Profile.ID,
		CommentFilters{PostTitle: "recipes"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Needs more salt", comments[0].Text)

	// Text match is a case-insensitive substring.
	comments, err = repo.ListVisible(ctx, alice.ID, alice.Profile.ID,
		CommentFilters{Text: "SALT"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	comments, err = repo.ListVisible(ctx, alice.ID, alice.Profile.ID,
		CommentFilters{PostTitle: "recipes", Text: "pack"}, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestListForPostNewestFirst(t *testing.T) {
	db := testDB(t)
	repo := NewCommentRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	post := createPost(t, posts, alice, "thread", true, time.Now())

	older := &models.Comment{UserID: alice.ID, PostID: post.ID, Text: "older"}
	newer := &models.Comment{UserID: alice.ID, PostID: post.ID, Text: "newer"}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	require.NoError(t, db.Model(newer).Update("created_at", time.Now()).Error)

	comments, err := repo.ListForPost(ctx, post.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "newer", comments[0].Text)
	assert.Equal(t, "older", comments[1].Text)
}
