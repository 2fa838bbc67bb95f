package user

// CreateUserRequest represents the request payload for creating a new user.
type CreateUserRequest struct {
	Name    string `json:"name" validate:"required,min=4,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

// UpdateUserRequest represents the request payload for updating an existing
// user. Nil fields are left unchanged; an empty patch is a no-op.
type UpdateUserRequest struct {
	ID      int64   `json:"-"`
	Name    *string `json:"name" validate:"omitempty,min=4,max=100"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// ListUsersRequest represents the request payload for listing users.
// It supports pagination and search functionality.
type ListUsersRequest struct {
	Query string
	Page  int64
	Limit int64
}

// ListUsersResponse represents the response payload for user listing.
type ListUsersResponse struct {
	Users      []User
	Pagination *Pagination
}

// Pagination represents pagination information for list responses.
type Pagination struct {
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// User represents a user DTO for API responses.
type User struct {
	ID      int64
	Name    string
	Email   string
	Address string
}
