package post

import (
	"context"

	"go.uber.org/zap"

	domain "user-post-service/internal/domain/post"
	userdomain "user-post-service/internal/domain/user"
	apperrors "user-post-service/pkg/errors"
	"user-post-service/pkg/validation"
)

// Repository defines the interface for post data access operations.
type Repository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, userID, page, limit int64) ([]domain.Post, int64, error)
}

// UserChecker reports whether the referenced user exists. A missing referent
// is a validation failure on the post, not a database constraint violation.
type UserChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Usecase implements the business logic for post management operations.
type Usecase struct {
	repo     Repository
	users    UserChecker
	log      *zap.Logger
	validate *validation.Validator
}

// New creates a new instance of Usecase with the provided repositories and logger.
func New(r Repository, users UserChecker, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, users: users, log: log, validate: validation.New()}
}

func toDTO(p *domain.Post) *Post {
	return &Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UserID:    p.UserID,
	}
}

// CreatePost creates a new post after validating the request and verifying
// that the referenced user exists.
func (uc *Usecase) CreatePost(ctx context.Context, in CreatePostRequest) (*Post, error) {
	uc.log.Info("creating post", zap.String("title", in.Title), zap.Int64("user_id", in.UserID))

	if err := uc.validate.Validate(in); err != nil {
		uc.log.Warn("create post validation failed", zap.Error(err))
		return nil, err
	}

	exists, err := uc.users.Exists(ctx, in.UserID)
	if err != nil {
		uc.log.Error("failed to check referenced user", zap.Int64("user_id", in.UserID), zap.Error(err))
		return nil, err
	}
	if !exists {
		uc.log.Warn("post references missing user", zap.Int64("user_id", in.UserID))
		return nil, apperrors.NewValidationError("userId", "userId does not reference an existing user")
	}

	stored, err := uc.repo.Create(ctx, &domain.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  in.UserID,
	})
	if err != nil {
		uc.log.Error("failed to create post", zap.Error(err))
		return nil, err
	}

	return toDTO(stored), nil
}

// UpdatePost applies a partial patch to an existing post. Only title and
// content can change; an empty patch leaves the record as is.
func (uc *Usecase) UpdatePost(ctx context.Context, in UpdatePostRequest) (*Post, error) {
	uc.log.Info("updating post", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		return nil, apperrors.NewValidationError("id", "id must be a positive integer")
	}
	if err := uc.validate.Validate(in); err != nil {
		uc.log.Warn("update post validation failed", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	current, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		current.Title = *in.Title
	}
	if in.Content != nil {
		current.Content = *in.Content
	}

	stored, err := uc.repo.Update(ctx, current)
	if err != nil {
		uc.log.Error("failed to update post", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return toDTO(stored), nil
}

// DeletePost deletes a post by ID.
func (uc *Usecase) DeletePost(ctx context.Context, in DeletePostRequest) error {
	uc.log.Info("deleting post", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		return apperrors.NewValidationError("id", "id must be a positive integer")
	}

	if err := uc.repo.Delete(ctx, in.ID); err != nil {
		uc.log.Error("failed to delete post", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}

	return nil
}

// GetPost retrieves a post by ID.
func (uc *Usecase) GetPost(ctx context.Context, in GetPostRequest) (*Post, error) {
	if in.ID <= 0 {
		return nil, apperrors.NewValidationError("id", "id must be a positive integer")
	}

	p, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		uc.log.Warn("failed to get post", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return toDTO(p), nil
}

// ListPosts retrieves a paginated list of posts, optionally filtered by user.
func (uc *Usecase) ListPosts(ctx context.Context, in ListPostsRequest) (*ListPostsResponse, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}

	uc.log.Info("listing posts", zap.Int64("user_id", in.UserID), zap.Int64("page", in.Page), zap.Int64("limit", in.Limit))

	domainPosts, total, err := uc.repo.List(ctx, in.UserID, in.Page, in.Limit)
	if err != nil {
		uc.log.Error("failed to list posts", zap.Int64("user_id", in.UserID), zap.Error(err))
		return nil, err
	}

	posts := make([]Post, len(domainPosts))
	for i, dp := range domainPosts {
		posts[i] = *toDTO(&dp)
	}

	p := userdomain.NewPagination(total, in.Page, in.Limit)
	return &ListPostsResponse{
		Posts: posts,
		Pagination: &Pagination{
			Total:      p.Total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: p.TotalPages,
		},
	}, nil
}
