package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-post-service/cmd/api/infrastructure"
	"user-post-service/internal/adapter/cache"
	"user-post-service/internal/adapter/db/postgres"
	ginhandler "user-post-service/internal/adapter/gin/handler"
	"user-post-service/internal/adapter/repository/cached"
	"user-post-service/internal/config"
	"user-post-service/internal/usecase/post"
	"user-post-service/internal/usecase/user"
	redisclient "user-post-service/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	UserUC      user.UserUsecase
	PostUC      post.PostUsecase
	UserHandler *ginhandler.UserHandler
	PostHandler *ginhandler.PostHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	// Repositories; the user repository gets a cache-aside decorator when
	// Redis is available.
	userDBRepo := postgres.NewUserRepoPG(db, l)
	var userRepo user.Repository = userDBRepo
	if rdb != nil {
		userCache := cache.NewRedisUserCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
		userRepo = cached.NewCachedUserRepository(userDBRepo, userCache, l)
	}
	postRepo := postgres.NewPostRepoPG(db, l)

	userUC := user.New(userRepo, l)
	postUC := post.New(postRepo, userRepo, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		UserUC:      userUC,
		PostUC:      postUC,
		UserHandler: ginhandler.NewUserHandler(userUC, l),
		PostHandler: ginhandler.NewPostHandler(postUC, l),
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
