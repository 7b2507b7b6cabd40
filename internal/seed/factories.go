// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var hashtagPool = []string{
	"go", "programming", "music", "travel", "food", "fitness",
	"photography", "books", "movies", "gaming", "art", "science",
	"startups", "devops", "linux", "coffee", "running", "cooking",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser persists a user with an attached profile. The password for
// every seeded account is "password123".
func (f *Factory) CreateUser(username string, overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	birth := gofakeit.DateRange(
		time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC))

	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: string(hashed),
		Profile: &models.Profile{
			Bio:       gofakeit.Sentence(8),
			BirthDate: &birth,
			Location:  fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
			Website:   gofakeit.URL(),
			ImageURL:  fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
		},
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// RandomUsername derives a plausible unique username. The numeric suffix
// keeps collisions out of large seed runs.
func (f *Factory) RandomUsername(n int) string {
	first := strings.ToLower(gofakeit.FirstName())
	last := strings.ToLower(gofakeit.LastName())

	formats := []string{"%s%s", "%s.%s", "%s_%s"}
	base := fmt.Sprintf(formats[f.r.Intn(len(formats))], first, last)
	return fmt.Sprintf("%s%d", base, n)
}

// CreateFollow inserts a follow edge between two profiles.
func (f *Factory) CreateFollow(follower, followee *models.User) error {
	return f.db.Create(&models.Follow{
		FollowerProfileID: follower.Profile.ID,
		FolloweeProfileID: followee.Profile.ID,
	}).Error
}

// CreatePost persists a post for the given user. Roughly one post in
// seven is scheduled in the future and left unpublished, so the publish
// sweep has work to do against seeded data.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	tagCount := f.r.Intn(3) + 1
	tags := make([]string, 0, tagCount)
	for _, i := range f.r.Perm(len(hashtagPool))[:tagCount] {
		tags = append(tags, hashtagPool[i])
	}

	post := &models.Post{
		UserID:      user.ID,
		Title:       gofakeit.Sentence(5),
		Text:        gofakeit.Paragraph(1, 3, 8, "\n"),
		Hashtags:    strings.Join(tags, ","),
		Published:   true,
		PublishDate: time.Now().AddDate(0, 0, -f.r.Intn(90)),
	}
	if f.r.Intn(7) == 0 {
		post.Published = false
		post.PublishDate = time.Now().AddDate(0, 0, f.r.Intn(14)+1)
	}
	if f.r.Float32() < 0.4 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}
	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment by user on post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		UserID: user.ID,
		PostID: post.ID,
		Text:   gofakeit.Sentence(f.r.Intn(12) + 3),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like edge. Duplicate pairs are the caller's
// problem; the unique index rejects them.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	return f.db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error
}

// CreateSocialLinks attaches n ordered social links to the profile.
func (f *Factory) CreateSocialLinks(user *models.User, n int) error {
	platforms := []string{"github", "mastodon", "bluesky", "linkedin", "youtube"}
	for i := 0; i < n && i < len(platforms); i++ {
		link := &models.SocialLink{
			ProfileID: user.Profile.ID,
			Platform:  platforms[i],
			URL:       fmt.Sprintf("https://%s.example.com/%s", platforms[i], user.Username),
			Position:  i,
		}
		if err := f.db.Create(link).Error; err != nil {
			return err
		}
	}
	return nil
}
