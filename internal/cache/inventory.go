package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs per cached entity. Feeds are not cached: they depend on the
// requester's position in the follow graph and would need per-requester
// invalidation on every edge change.
const (
	UserTTL          = 5 * time.Minute
	ProfileDetailTTL = 10 * time.Minute
	PostTTL          = 30 * time.Minute
)

// UserKey is the cache key for a user by ID.
func UserKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

// ProfileDetailKey is the cache key for the assembled profile detail view.
func ProfileDetailKey(profileID uint) string {
	return fmt.Sprintf("profile:detail:%d", profileID)
}

// PostKey is the cache key for a post by ID (anonymous view only).
func PostKey(postID uint) string {
	return fmt.Sprintf("post:%d", postID)
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first; on miss it calls fetch (which must populate
// dest), then stores the result with ttl. Cache writes are best-effort.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err != nil {
		// Degrade to the source of truth on cache errors.
		return fetch()
	}
	if found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}

// Invalidate removes a key. Best-effort; a miss is not an error.
func Invalidate(ctx context.Context, key string) {
	if client == nil {
		return
	}
	client.Del(ctx, key)
}

// InvalidateUser drops the cached user record.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateProfileDetail drops the cached profile detail view. Called on
// profile updates and on every follow/unfollow touching the profile.
func InvalidateProfileDetail(ctx context.Context, profileID uint) {
	Invalidate(ctx, ProfileDetailKey(profileID))
}

// InvalidatePost drops the cached post record.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}
