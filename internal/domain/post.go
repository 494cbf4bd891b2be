package domain

import "time"

// Post is a short text update published by a user. AuthorName is a
// denormalized copy of the author's display name at last write; the
// repository keeps it in sync when the user renames themselves.
type Post struct {
	ID         int64
	UserID     int64
	Content    string
	CreatedAt  time.Time
	AuthorName string
}
