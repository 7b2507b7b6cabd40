// Package repository provides data access layer implementations for the application.
package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ProfileFilters narrow the profiles feed. Zero values mean "no filter";
// filters compose with AND.
type ProfileFilters struct {
	// OwnerUsernames matches the owner's username exactly against the set.
	OwnerUsernames []string
	// BirthDate matches the calendar day exactly.
	BirthDate *time.Time
	// Location is a case-insensitive substring match.
	Location string
}

// PostFilters narrow the posts feed.
type PostFilters struct {
	// Hashtags matches posts carrying any of the given tags.
	Hashtags []string
	// CreatedOn / UpdatedOn match the calendar day exactly.
	CreatedOn *time.Time
	UpdatedOn *time.Time
}

// CommentFilters narrow the comments feed.
type CommentFilters struct {
	// PostTitle matches the parent post's title exactly.
	PostTitle string
	// Text is a case-insensitive substring match.
	Text string
}

// dayRange returns the [start, end) bounds of the calendar day containing t,
// in t's location.
func dayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

// whereDay appends an exact-day range condition on the given column.
func whereDay(db *gorm.DB, column string, day time.Time) *gorm.DB {
	start, end := dayRange(day)
	return db.Where(column+" >= ? AND "+column+" < ?", start, end)
}

// whereContainsFold appends a case-insensitive substring condition.
// LOWER/LIKE instead of ILIKE so the same query runs on PostgreSQL and
// the SQLite test database.
func whereContainsFold(db *gorm.DB, column, needle string) *gorm.DB {
	return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(needle)+"%")
}
