package post

import "time"

// CreatePostRequest represents the request payload for creating a new post.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required"`
	UserID  int64  `json:"userId" validate:"required,gt=0"`
}

// UpdatePostRequest represents the request payload for updating an existing
// post. Nil fields are left unchanged; an empty patch is a no-op.
// The owning user and creation timestamp are immutable.
type UpdatePostRequest struct {
	ID      int64   `json:"-"`
	Title   *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

// DeletePostRequest represents the request payload for deleting a post.
type DeletePostRequest struct {
	ID int64
}

// GetPostRequest represents the request payload for retrieving a post.
type GetPostRequest struct {
	ID int64
}

// ListPostsRequest represents the request payload for listing posts.
// A zero UserID lists posts of every user.
type ListPostsRequest struct {
	UserID int64
	Page   int64
	Limit  int64
}

// ListPostsResponse represents the response payload for post listing.
type ListPostsResponse struct {
	Posts      []Post
	Pagination *Pagination
}

// Pagination represents pagination information for list responses.
type Pagination struct {
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// Post represents a post DTO for API responses.
type Post struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UserID    int64
}
