package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-post-service/internal/domain/post"
	apperrors "user-post-service/pkg/errors"
)

// PostRepoPG implements the post Repository interface using PostgreSQL and GORM.
type PostRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewPostRepoPG creates a new instance of PostRepoPG.
func NewPostRepoPG(db *gorm.DB, log *zap.Logger) *PostRepoPG {
	return &PostRepoPG{db: db, log: log}
}

// PostSchema represents the database schema for the posts table.
type PostSchema struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"` // Assigned by the server on insert
	UserID    int64     `gorm:"not null;index"` // Owning user
}

// TableName specifies the table name for the PostSchema model.
func (PostSchema) TableName() string {
	return "posts"
}

func (m *PostSchema) toDomain() *post.Post {
	return &post.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UserID:    m.UserID,
	}
}

// Create inserts a new post and returns the stored record including the
// generated id and createdAt timestamp.
func (r *PostRepoPG) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if p == nil {
		return nil, errors.New("post cannot be nil")
	}

	model := PostSchema{
		Title:   p.Title,
		Content: p.Content,
		UserID:  p.UserID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create post in db", zap.Error(err), zap.Int64("user_id", p.UserID))
		return nil, apperrors.NewInternalError("failed to create post", err)
	}

	r.log.Info("post created in db", zap.Int64("id", model.ID), zap.Int64("user_id", model.UserID))
	return model.toDomain(), nil
}

// GetByID retrieves a post by its unique ID.
func (r *PostRepoPG) GetByID(ctx context.Context, id int64) (*post.Post, error) {
	var model PostSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("post not found", zap.Int64("id", id))
			return nil, apperrors.NewNotFoundError("post", fmt.Sprintf("post not found: id=%d", id))
		}
		r.log.Error("failed to get post from db", zap.Error(err), zap.Int64("id", id))
		return nil, apperrors.NewInternalError("failed to get post", err)
	}

	return model.toDomain(), nil
}

// Update replaces an existing post row and returns the stored record.
// CreatedAt and UserID are immutable once the post exists.
func (r *PostRepoPG) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	if p == nil {
		return nil, errors.New("post cannot be nil")
	}

	model := PostSchema{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UserID:    p.UserID,
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		r.log.Error("failed to update post in db", zap.Error(err), zap.Int64("id", p.ID))
		return nil, apperrors.NewInternalError("failed to update post", err)
	}

	r.log.Info("post updated in db", zap.Int64("id", model.ID))
	return model.toDomain(), nil
}

// Delete removes a post by ID.
func (r *PostRepoPG) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&PostSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete post in db", zap.Error(res.Error), zap.Int64("id", id))
		return apperrors.NewInternalError("failed to delete post", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("post not found for delete", zap.Int64("id", id))
		return apperrors.NewNotFoundError("post", fmt.Sprintf("post not found: id=%d", id))
	}

	r.log.Info("post deleted in db", zap.Int64("id", id))
	return nil
}

// List retrieves posts with pagination, optionally filtered by owning user,
// along with the total count of matching rows. userID of zero means no filter.
func (r *PostRepoPG) List(ctx context.Context, userID, page, limit int64) ([]post.Post, int64, error) {
	base := r.db.WithContext(ctx).Model(&PostSchema{})
	if userID > 0 {
		base = base.Where("user_id = ?", userID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		r.log.Error("failed to count posts in db", zap.Error(err), zap.Int64("user_id", userID))
		return nil, 0, apperrors.NewInternalError("failed to list posts", err)
	}

	var models []PostSchema
	if err := base.Order("id").Offset(int((page - 1) * limit)).Limit(int(limit)).Find(&models).Error; err != nil {
		r.log.Error("failed to list posts from db", zap.Error(err), zap.Int64("user_id", userID), zap.Int64("page", page), zap.Int64("limit", limit))
		return nil, 0, apperrors.NewInternalError("failed to list posts", err)
	}

	posts := make([]post.Post, len(models))
	for i, model := range models {
		posts[i] = *model.toDomain()
	}

	return posts, total, nil
}
