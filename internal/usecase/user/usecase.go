package user

import (
	"context"

	"go.uber.org/zap"

	domain "user-post-service/internal/domain/user"
	apperrors "user-post-service/pkg/errors"
	"user-post-service/pkg/validation"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing different implementations
// (e.g., PostgreSQL, cached decorator) to be used interchangeably.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query string, page, limit int64) ([]domain.User, int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// Usecase implements the business logic for user management operations.
// It provides a clean separation between the transport layer and data layer.
type Usecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validation.Validator
}

// New creates a new instance of Usecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, log: log, validate: validation.New()}
}

func toDTO(u *domain.User) *User {
	return &User{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
	}
}

// CreateUser creates a new user after validating the request and checking
// email uniqueness. Returns the stored record including the generated id.
func (uc *Usecase) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	uc.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := uc.validate.Validate(in); err != nil {
		uc.log.Warn("create user validation failed", zap.Error(err))
		return nil, err
	}

	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		uc.log.Warn("email already exists", zap.String("email", in.Email))
		return nil, apperrors.NewAlreadyExistsError("user", "email already exists")
	}

	stored, err := uc.repo.Create(ctx, &domain.User{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
	})
	if err != nil {
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return toDTO(stored), nil
}

// UpdateUser applies a partial patch to an existing user. Only fields
// present in the request change; an empty patch leaves the record as is.
func (uc *Usecase) UpdateUser(ctx context.Context, in UpdateUserRequest) (*User, error) {
	uc.log.Info("updating user", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		return nil, apperrors.NewValidationError("id", "id must be a positive integer")
	}
	if err := uc.validate.Validate(in); err != nil {
		uc.log.Warn("update user validation failed", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	current, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != current.Email {
		existing, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			uc.log.Error("failed to check existing email", zap.String("email", *in.Email), zap.Error(err))
			return nil, err
		}
		if existing != nil && existing.ID != in.ID {
			uc.log.Warn("email already exists", zap.String("email", *in.Email), zap.Int64("existing_id", existing.ID))
			return nil, apperrors.NewAlreadyExistsError("user", "email already exists")
		}
		current.Email = *in.Email
	}
	if in.Name != nil {
		current.Name = *in.Name
	}
	if in.Address != nil {
		current.Address = *in.Address
	}

	stored, err := uc.repo.Update(ctx, current)
	if err != nil {
		uc.log.Error("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return toDTO(stored), nil
}

// DeleteUser deletes a user by ID. Posts owned by the user are removed in
// the same transaction.
func (uc *Usecase) DeleteUser(ctx context.Context, in DeleteUserRequest) error {
	uc.log.Info("deleting user", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		return apperrors.NewValidationError("id", "id must be a positive integer")
	}

	if err := uc.repo.Delete(ctx, in.ID); err != nil {
		uc.log.Error("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}

	return nil
}

// GetUser retrieves a user by ID.
func (uc *Usecase) GetUser(ctx context.Context, in GetUserRequest) (*User, error) {
	if in.ID <= 0 {
		return nil, apperrors.NewValidationError("id", "id must be a positive integer")
	}

	u, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		uc.log.Warn("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return toDTO(u), nil
}

// ListUsers retrieves a paginated list of users with optional search.
func (uc *Usecase) ListUsers(ctx context.Context, in ListUsersRequest) (*ListUsersResponse, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}

	uc.log.Info("listing users", zap.String("query", in.Query), zap.Int64("page", in.Page), zap.Int64("limit", in.Limit))

	domainUsers, total, err := uc.repo.List(ctx, in.Query, in.Page, in.Limit)
	if err != nil {
		uc.log.Error("failed to list users", zap.String("query", in.Query), zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = *toDTO(&du)
	}

	p := domain.NewPagination(total, in.Page, in.Limit)
	return &ListUsersResponse{
		Users: users,
		Pagination: &Pagination{
			Total:      p.Total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: p.TotalPages,
		},
	}, nil
}
