package seed

import (
	"fmt"
	"log"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers int
	NumPosts int
	// FollowProbability is the chance that any ordered pair of distinct
	// users gets a follow edge. 0 falls back to 0.15.
	FollowProbability float64
	ShouldClean       bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db)

	users, err := createUsers(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	edges, err := createFollowMesh(f, users, opts.FollowProbability)
	if err != nil {
		return fmt.Errorf("failed to create follow mesh: %w", err)
	}
	log.Printf("✓ %d follow edges created", edges)

	posts, err := createPosts(f, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := createEngagement(f, users, posts); err != nil {
		return fmt.Errorf("failed to create comments and likes: %w", err)
	}
	log.Println("✓ comments and likes created")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE likes, comments, posts, follows, social_links, profiles, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(f *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Always include fixed accounts so developers can log in without
	// digging through the generated data.
	if count >= 2 {
		for _, name := range []string{"demo", "test"} {
			user, err := f.CreateUser(name)
			if err != nil {
				log.Printf("Failed to create user %s: %v", name, err)
				continue
			}
			if err := f.CreateSocialLinks(user, 2); err != nil {
				return nil, err
			}
			users = append(users, user)
		}
	}

	for i := len(users); i < count; i++ {
		username := f.RandomUsername(i)
		user, err := f.CreateUser(username)
		if err != nil {
			log.Printf("Failed to create user %s: %v", username, err)
			continue
		}
		users = append(users, user)

		if i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}
	return users, nil
}

// createFollowMesh wires a random directed graph over the users. Each
// ordered pair is visited once, so no duplicate edges are attempted.
func createFollowMesh(f *Factory, users []*models.User, prob float64) (int, error) {
	if prob <= 0 {
		prob = 0.15
	}

	edges := 0
	for _, follower := range users {
		for _, followee := range users {
			if follower.ID == followee.ID {
				continue
			}
			if f.r.Float64() >= prob {
				continue
			}
			if err := f.CreateFollow(follower, followee); err != nil {
				return edges, err
			}
			edges++
		}
	}
	return edges, nil
}

func createPosts(f *Factory, users []*models.User, count int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		user := users[f.r.Intn(len(users))]
		post, err := f.CreatePost(user)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)

		if i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}
	return posts, nil
}

// createEngagement sprinkles comments and likes over the published
// posts. Like pairs are deduplicated up front so the unique index never
// fires during seeding.
func createEngagement(f *Factory, users []*models.User, posts []*models.Post) error {
	liked := make(map[[2]uint]bool)

	for _, post := range posts {
		if !post.Published {
			continue
		}

		for i := f.r.Intn(4); i > 0; i-- {
			user := users[f.r.Intn(len(users))]
			if _, err := f.CreateComment(user, post); err != nil {
				return err
			}
		}

		for i := f.r.Intn(6); i > 0; i-- {
			user := users[f.r.Intn(len(users))]
			key := [2]uint{user.ID, post.ID}
			if liked[key] {
				continue
			}
			liked[key] = true
			if err := f.CreateLike(user, post); err != nil {
				return err
			}
		}
	}
	return nil
}
