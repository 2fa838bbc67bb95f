package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-post-service/internal/domain/user"
	apperrors "user-post-service/pkg/errors"
)

// UserRepoPG implements the user Repository interface using PostgreSQL and GORM.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"` // Unique identifier with auto-increment
	Name    string `gorm:"not null"`                 // User's full name (required)
	Email   string `gorm:"not null;unique"`          // User's unique email address (required, unique)
	Address string // Optional postal address
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

func (m *UserSchema) toDomain() *user.User {
	return &user.User{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Address: m.Address,
	}
}

// Create inserts a new user into the database and returns the stored record.
func (r *UserRepoPG) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := UserSchema{
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return nil, apperrors.NewInternalError("failed to create user", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	return model.toDomain(), nil
}

// Update replaces an existing user row and returns the stored record.
func (r *UserRepoPG) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := UserSchema{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		r.log.Error("failed to update user in db", zap.Error(err), zap.Int64("id", u.ID))
		return nil, apperrors.NewInternalError("failed to update user", err)
	}

	r.log.Info("user updated in db", zap.Int64("id", model.ID))
	return model.toDomain(), nil
}

// Delete removes a user and every post the user owns in one transaction.
func (r *UserRepoPG) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%d", id))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&PostSchema{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&UserSchema{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("user not found for delete", zap.Int64("id", id))
			return apperrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%d", id))
		}
		r.log.Error("failed to delete user in db", zap.Error(err), zap.Int64("id", id))
		return apperrors.NewInternalError("failed to delete user", err)
	}

	r.log.Info("user deleted in db", zap.Int64("id", id))
	return nil
}

// GetByID retrieves a user from the database by their unique ID.
func (r *UserRepoPG) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("user not found", zap.Int64("id", id))
			return nil, apperrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%d", id))
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	return model.toDomain(), nil
}

// GetByEmail retrieves a user by email address.
// Returns nil without error when no user has the given email.
func (r *UserRepoPG) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, apperrors.NewInternalError("failed to get user by email", err)
	}

	return model.toDomain(), nil
}

// List retrieves users with pagination and name/email search, along with
// the total count of matching rows.
func (r *UserRepoPG) List(ctx context.Context, query string, page, limit int64) ([]user.User, int64, error) {
	base := r.db.WithContext(ctx).Model(&UserSchema{})
	if query != "" {
		pattern := "%" + query + "%"
		base = base.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		r.log.Error("failed to count users in db", zap.Error(err), zap.String("query", query))
		return nil, 0, apperrors.NewInternalError("failed to list users", err)
	}

	var models []UserSchema
	if err := base.Order("id").Offset(int((page - 1) * limit)).Limit(int(limit)).Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err), zap.String("query", query), zap.Int64("page", page), zap.Int64("limit", limit))
		return nil, 0, apperrors.NewInternalError("failed to list users", err)
	}

	users := make([]user.User, len(models))
	for i, model := range models {
		users[i] = *model.toDomain()
	}

	return users, total, nil
}

// Exists reports whether a user row with the given ID is present.
func (r *UserRepoPG) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserSchema{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.log.Error("failed to check user existence", zap.Error(err), zap.Int64("id", id))
		return false, apperrors.NewInternalError("failed to check user existence", err)
	}
	return count > 0, nil
}
