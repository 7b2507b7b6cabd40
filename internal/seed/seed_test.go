package seed

import (
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func seedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.SocialLink{},
		&models.Follow{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	))
	return db
}

func TestFactoryCreateUserAttachesProfile(t *testing.T) {
	db := seedTestDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser("alice")
	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	assert.NotZero(t, user.Profile.ID)
	assert.Equal(t, user.ID, user.Profile.UserID)
	assert.NotEmpty(t, user.Profile.Bio)
}

func TestSeedPopulatesEveryTable(t *testing.T) {
	db := seedTestDB(t)

	// ShouldClean stays off: TRUNCATE ... CASCADE is PostgreSQL syntax.
	err := Seed(db, Options{
		NumUsers:          8,
		NumPosts:          30,
		FollowProbability: 0.5,
	})
	require.NoError(t, err)

	counts := map[string]int64{}
	for name, model := range map[string]any{
		"users":    &models.User{},
		"profiles": &models.Profile{},
		"follows":  &models.Follow{},
		"posts":    &models.Post{},
	} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		counts[name] = n
	}

	assert.Equal(t, int64(8), counts["users"])
	assert.Equal(t, int64(8), counts["profiles"], "every user gets a profile")
	assert.Equal(t, int64(30), counts["posts"])
	assert.Positive(t, counts["follows"])
}

func TestSeedFollowMeshHasNoDuplicateEdges(t *testing.T) {
	db := seedTestDB(t)

	require.NoError(t, Seed(db, Options{
		NumUsers:          6,
		NumPosts:          5,
		FollowProbability: 0.9,
	}))

	var total int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&total).Error)

	var distinct int64
	require.NoError(t, db.Model(&models.Follow{}).
		Distinct("follower_profile_id", "followee_profile_id").
		Count(&distinct).Error)
	assert.Equal(t, total, distinct)

	// No self edges either.
	var selfEdges int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_profile_id = followee_profile_id").
		Count(&selfEdges).Error)
	assert.Zero(t, selfEdges)
}

func TestSeedLikesRespectUniqueIndex(t *testing.T) {
	db := seedTestDB(t)

	require.NoError(t, Seed(db, Options{
		NumUsers:          5,
		NumPosts:          20,
		FollowProbability: 0.3,
	}))

	var total, distinct int64
	require.NoError(t, db.Model(&models.Like{}).Count(&total).Error)
	require.NoError(t, db.Model(&models.Like{}).
		Distinct("user_id", "post_id").
		Count(&distinct).Error)
	assert.Equal(t, total, distinct)
}
