package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	usecase "user-post-service/internal/usecase/user"
	apperrors "user-post-service/pkg/errors"
)

// MockUserUsecase is a mock implementation of user.UserUsecase
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, req usecase.CreateUserRequest) (*usecase.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.User), args.Error(1)
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, req usecase.UpdateUserRequest) (*usecase.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.User), args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, req usecase.DeleteUserRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, req usecase.GetUserRequest) (*usecase.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.User), args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, req usecase.ListUsersRequest) (*usecase.ListUsersResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ListUsersResponse), args.Error(1)
}

func setupUserTest(t *testing.T) (*gin.Engine, *MockUserUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockUserUsecase)
	handler := NewUserHandler(mockUsecase, zaptest.NewLogger(t))

	r := gin.New()
	r.POST("/v1/users", handler.CreateUser)
	r.GET("/v1/users", handler.ListUsers)
	r.GET("/v1/users/:id", handler.GetUser)
	r.PUT("/v1/users/:id", handler.UpdateUser)
	r.DELETE("/v1/users/:id", handler.DeleteUser)
	return r, mockUsecase
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("CreateUser", mock.Anything, mock.MatchedBy(func(req usecase.CreateUserRequest) bool {
			return req.Name == "John Doe" && req.Email == "john@example.com"
		})).Return(&usecase.User{ID: 1, Name: "John Doe", Email: "john@example.com"}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/users", map[string]string{
			"name":  "John Doe",
			"email": "john@example.com",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "John Doe", resp.Name)
	})

	t.Run("Validation Error Lists Violations", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("CreateUser", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationErrors([]apperrors.Violation{
				{Field: "name", Message: "name must be at least 4 characters"},
				{Field: "email", Message: "email is required"},
			}))

		w := doJSON(t, r, http.MethodPost, "/v1/users", map[string]string{"name": "Jo"})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
		require.Len(t, resp.Violations, 2)
		assert.Equal(t, "name must be at least 4 characters", resp.Violations[0].Message)
		assert.Equal(t, "email is required", resp.Violations[1].Message)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		r, _ := setupUserTest(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("CreateUser", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewAlreadyExistsError("user", "email already exists"))

		w := doJSON(t, r, http.MethodPost, "/v1/users", map[string]string{
			"name":  "John Doe",
			"email": "john@example.com",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Store Failure Is Generic 500", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("CreateUser", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewInternalError("failed to create user", assert.AnError))

		w := doJSON(t, r, http.MethodPost, "/v1/users", map[string]string{
			"name":  "John Doe",
			"email": "john@example.com",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("GetUser", mock.Anything, usecase.GetUserRequest{ID: 1}).
			Return(&usecase.User{ID: 1, Name: "John Doe", Email: "john@example.com"}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/users/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "john@example.com", resp.Email)
	})

	t.Run("Not Found", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("GetUser", mock.Anything, usecase.GetUserRequest{ID: 99}).
			Return(nil, apperrors.NewNotFoundError("user", "user not found: id=99"))

		w := doJSON(t, r, http.MethodGet, "/v1/users/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		r, _ := setupUserTest(t)

		w := doJSON(t, r, http.MethodGet, "/v1/users/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	r, mockUsecase := setupUserTest(t)

	name := "Johnny Doe"
	mockUsecase.On("UpdateUser", mock.Anything, mock.MatchedBy(func(req usecase.UpdateUserRequest) bool {
		return req.ID == 1 && req.Name != nil && *req.Name == name && req.Email == nil
	})).Return(&usecase.User{ID: 1, Name: name, Email: "john@example.com"}, nil)

	w := doJSON(t, r, http.MethodPut, "/v1/users/1", map[string]string{"name": name})

	assert.Equal(t, http.StatusOK, w.Code)
	mockUsecase.AssertExpectations(t)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("No Content", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("DeleteUser", mock.Anything, usecase.DeleteUserRequest{ID: 1}).Return(nil)

		w := doJSON(t, r, http.MethodDelete, "/v1/users/1", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Not Found", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("DeleteUser", mock.Anything, usecase.DeleteUserRequest{ID: 99}).
			Return(apperrors.NewNotFoundError("user", "user not found: id=99"))

		w := doJSON(t, r, http.MethodDelete, "/v1/users/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	r, mockUsecase := setupUserTest(t)

	mockUsecase.On("ListUsers", mock.Anything, usecase.ListUsersRequest{Query: "john", Page: 2, Limit: 5}).
		Return(&usecase.ListUsersResponse{
			Users:      []usecase.User{{ID: 1, Name: "John Doe", Email: "john@example.com"}},
			Pagination: &usecase.Pagination{Total: 6, Page: 2, Limit: 5, TotalPages: 2},
		}, nil)

	w := doJSON(t, r, http.MethodGet, "/v1/users?query=john&page=2&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ListUsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 1)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, int64(6), resp.Pagination.Total)
}
