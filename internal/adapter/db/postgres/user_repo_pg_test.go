package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"user-post-service/internal/domain/post"
	"user-post-service/internal/domain/user"
	apperrors "user-post-service/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&UserSchema{}, &PostSchema{})
	require.NoError(t, err)

	return db
}

func TestUserRepoPG_CreateAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	stored, err := repo.Create(ctx, &user.User{
		Name:    "John Doe",
		Email:   "john@example.com",
		Address: "1 Main St",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Positive(t, stored.ID)

	got, err := repo.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john@example.com", got.Email)
	assert.Equal(t, "1 Main St", got.Address)
}

func TestUserRepoPG_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)

	var nferr *apperrors.NotFoundError
	assert.True(t, errors.As(err, &nferr))
}

func TestUserRepoPG_GetByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	found, err := repo.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "John Doe", found.Name)

	// Absent email is not an error
	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepoPG_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	stored, err := repo.Create(ctx, &user.User{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	stored.Name = "John Q. Doe"
	stored.Address = "2 Side St"
	updated, err := repo.Update(ctx, stored)
	require.NoError(t, err)
	assert.Equal(t, "John Q. Doe", updated.Name)

	got, err := repo.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Q. Doe", got.Name)
	assert.Equal(t, "2 Side St", got.Address)
}

func TestUserRepoPG_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))

	err := repo.Delete(context.Background(), 999)
	require.Error(t, err)

	var nferr *apperrors.NotFoundError
	assert.True(t, errors.As(err, &nferr))
}

func TestUserRepoPG_Delete_CascadesPosts(t *testing.T) {
	db := setupTestDB(t)
	logger := zaptest.NewLogger(t)
	userRepo := NewUserRepoPG(db, logger)
	postRepo := NewPostRepoPG(db, logger)
	ctx := context.Background()

	owner, err := userRepo.Create(ctx, &user.User{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	other, err := userRepo.Create(ctx, &user.User{Name: "Jane Smith", Email: "jane@example.com"})
	require.NoError(t, err)

	owned, err := postRepo.Create(ctx, &post.Post{Title: "Hello", Content: "first", UserID: owner.ID})
	require.NoError(t, err)
	kept, err := postRepo.Create(ctx, &post.Post{Title: "Other", Content: "second", UserID: other.ID})
	require.NoError(t, err)

	require.NoError(t, userRepo.Delete(ctx, owner.ID))

	_, err = userRepo.GetByID(ctx, owner.ID)
	var nferr *apperrors.NotFoundError
	assert.True(t, errors.As(err, &nferr))

	_, err = postRepo.GetByID(ctx, owned.ID)
	assert.True(t, errors.As(err, &nferr), "posts of the deleted user must be gone")

	still, err := postRepo.GetByID(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, still.UserID)
}

func TestUserRepoPG_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	seed := []user.User{
		{Name: "John Doe", Email: "john@example.com"},
		{Name: "Jane Smith", Email: "jane@example.com"},
		{Name: "Bobby Tables", Email: "bobby@other.org"},
	}
	for i := range seed {
		_, err := repo.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	tests := []struct {
		name          string
		query         string
		page, limit   int64
		expectCount   int
		expectedTotal int64
	}{
		{name: "all users", query: "", page: 1, limit: 10, expectCount: 3, expectedTotal: 3},
		{name: "search by name", query: "john", page: 1, limit: 10, expectCount: 1, expectedTotal: 1},
		{name: "search by email domain", query: "example.com", page: 1, limit: 10, expectCount: 2, expectedTotal: 2},
		{name: "pagination first page", query: "", page: 1, limit: 2, expectCount: 2, expectedTotal: 3},
		{name: "pagination last page", query: "", page: 2, limit: 2, expectCount: 1, expectedTotal: 3},
		{name: "no match", query: "zzz", page: 1, limit: 10, expectCount: 0, expectedTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, total, err := repo.List(ctx, tt.query, tt.page, tt.limit)
			require.NoError(t, err)
			assert.Len(t, users, tt.expectCount)
			assert.Equal(t, tt.expectedTotal, total)
		})
	}
}

func TestUserRepoPG_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	stored, err := repo.Create(ctx, &user.User{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	exists, err := repo.Exists(ctx, stored.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exists)
}
