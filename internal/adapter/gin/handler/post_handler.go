package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-post-service/internal/usecase/post"
)

// PostHandler handles HTTP requests for post operations
type PostHandler struct {
	uc  post.PostUsecase
	log *zap.Logger
}

// NewPostHandler creates a new PostHandler instance
func NewPostHandler(uc post.PostUsecase, log *zap.Logger) *PostHandler {
	return &PostHandler{
		uc:  uc,
		log: log,
	}
}

// PostResponse represents the HTTP response for post data
type PostResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    int64     `json:"userId"`
}

// ListPostsResponse represents the HTTP response for listing posts
type ListPostsResponse struct {
	Posts      []PostResponse `json:"posts"`
	Pagination *Pagination    `json:"pagination,omitempty"`
}

func toPostResponse(p *post.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UserID:    p.UserID,
	}
}

// CreatePost handles POST /v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create post request body", zap.Error(err))
		writeBindError(c)
		return
	}

	resp, err := h.uc.CreatePost(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPostResponse(resp))
}

// GetPost handles GET /v1/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.log.Warn("invalid post id", zap.String("id", c.Param("id")))
		writeInvalidID(c)
		return
	}

	resp, err := h.uc.GetPost(c.Request.Context(), post.GetPostRequest{ID: id})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponse(resp))
}

// UpdatePost handles PUT /v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.log.Warn("invalid post id", zap.String("id", c.Param("id")))
		writeInvalidID(c)
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update post request body", zap.Error(err))
		writeBindError(c)
		return
	}
	req.ID = id

	resp, err := h.uc.UpdatePost(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponse(resp))
}

// DeletePost handles DELETE /v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.log.Warn("invalid post id", zap.String("id", c.Param("id")))
		writeInvalidID(c)
		return
	}

	if err := h.uc.DeletePost(c.Request.Context(), post.DeletePostRequest{ID: id}); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPosts handles GET /v1/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	var userID int64
	if raw := c.Query("userId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			writeInvalidID(c)
			return
		}
		userID = parsed
	}

	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	resp, err := h.uc.ListPosts(c.Request.Context(), post.ListPostsRequest{
		UserID: userID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	posts := make([]PostResponse, len(resp.Posts))
	for i, p := range resp.Posts {
		posts[i] = toPostResponse(&p)
	}

	var pagination *Pagination
	if resp.Pagination != nil {
		pagination = &Pagination{
			Total:      resp.Pagination.Total,
			Page:       resp.Pagination.Page,
			Limit:      resp.Pagination.Limit,
			TotalPages: resp.Pagination.TotalPages,
		}
	}

	c.JSON(http.StatusOK, ListPostsResponse{
		Posts:      posts,
		Pagination: pagination,
	})
}
