package post

import "context"

// PostUsecase defines the interface for post business logic operations.
type PostUsecase interface {
	CreatePost(ctx context.Context, in CreatePostRequest) (*Post, error)
	UpdatePost(ctx context.Context, in UpdatePostRequest) (*Post, error)
	DeletePost(ctx context.Context, in DeletePostRequest) error
	GetPost(ctx context.Context, in GetPostRequest) (*Post, error)
	ListPosts(ctx context.Context, in ListPostsRequest) (*ListPostsResponse, error)
}
