package repository

import (
	"context"
	"fmt"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testDB opens an in-memory database with the same schema the
// application migrates. TranslateError makes unique violations surface
// as gorm.ErrDuplicatedKey, matching the PostgreSQL driver.
func testDB(t *testing.T) *gorm.DB {
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

// seedUser inserts a user with an attached profile and returns it with
// both IDs populated.
func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashed",
		Profile:  &models.Profile{},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedFollow(t *testing.T, db *gorm.DB, follower, followee *models.User) {
	t.Helper()
	repo := NewFollowRepository(db)
	require.NoError(t, repo.Follow(context.Background(), follower.Profile.ID, followee.Profile.ID))
}
