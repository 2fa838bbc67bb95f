package post

import "time"

// Post represents a post entity owned by a user.
type Post struct {
	ID        int64     // ID is the unique identifier for the post
	Title     string    // Title is the display title of the post
	Content   string    // Content is the body of the post
	CreatedAt time.Time // CreatedAt is assigned by the server on insert
	UserID    int64     // UserID references the owning user
}
