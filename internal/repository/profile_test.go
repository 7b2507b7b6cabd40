package repository

import (
	"context"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleUsernames(t *testing.T, profiles []models.Profile) []string {
	t.Helper()
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.User.Username)
	}
	return names
}

func TestProfileFeedIsTheGraphNeighborhood(t *testing.T) {
	db := testDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	seedUser(t, db, "dave")

	// alice -> bob, carol -> alice. Dave is disconnected and stays out.
	seedFollow(t, db, alice, bob)
	seedFollow(t, db, carol, alice)

	profiles, err := repo.ListVisible(ctx, alice.Profile.ID, alice.ID, ProfileFilters{}, 20, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob", "carol"}, visibleUsernames(t, profiles))
}

func TestProfileFeedDeduplicatesMutualEdges(t *testing.T) {
	db := testDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	// A mutual pair matches both the follower and followee subqueries;
	// the row must still appear once.
	seedFollow(t, db, alice, bob)
	seedFollow(t, db, bob, alice)

	profiles, err := repo.ListVisible(ctx, alice.Profile.ID, alice.ID, ProfileFilters{}, 20, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, visibleUsernames(t, profiles))
}

func TestProfileFeedFilters(t *testing.T) {
	db := testDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	seedFollow(t, db, alice, bob)
	seedFollow(t, db, alice, carol)

	birthday := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(bob.Profile).Updates(map[string]any{
		"birth_date": birthday,
		"location":   "Lisbon, Portugal",
	}).Error)

	profiles, err := repo.ListVisible(ctx, alice.Profile.ID, alice.ID,
		ProfileFilters{OwnerUsernames: []string{"bob", "carol"}}, 20, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bob", "carol"}, visibleUsernames(t, profiles))

	profiles, err = repo.ListVisible(ctx, alice.Profile.ID, alice.ID,
		ProfileFilters{BirthDate: &birthday}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, visibleUsernames(t, profiles))

	profiles, err = repo.ListVisible(ctx, alice.Profile.ID, alice.ID,
		ProfileFilters{Location: "lisbon"}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, visibleUsernames(t, profiles))

	// Filters cannot widen visibility past the graph neighborhood.
	profiles, err = repo.ListVisible(ctx, bob.Profile.ID, bob.ID,
		ProfileFilters{OwnerUsernames: []string{"carol"}}, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestAddSocialLinkAppendsPositions(t *testing.T) {
	db := testDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")

	require.NoError(t, repo.AddSocialLink(ctx, alice.Profile.ID, "github", "https://github.com/alice"))
	require.NoError(t, repo.AddSocialLink(ctx, alice.Profile.ID, "mastodon", "https://hachyderm.io/@alice"))

	profile, err := repo.GetByID(ctx, alice.Profile.ID)
	require.NoError(t, err)
	require.Len(t, profile.SocialLinks, 2)
	assert.Equal(t, "github", profile.SocialLinks[0].Platform)
	assert.Equal(t, "mastodon", profile.SocialLinks[1].Platform)

	var positions []int
	require.NoError(t, db.Model(&models.SocialLink{}).
		Where("profile_id = ?", alice.Profile.ID).
		Order("position ASC").
		Pluck("position", &positions).Error)
	assert.Equal(t, []int{0, 1}, positions)
}

func TestGetByUserID(t *testing.T) {
	db := testDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")

	profile, err := repo.GetByUserID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.Profile.ID, profile.ID)
	assert.Equal(t, "alice", profile.User.Username)

	_, err = repo.GetByUserID(ctx, 9999)
	assert.Error(t, err)
}
