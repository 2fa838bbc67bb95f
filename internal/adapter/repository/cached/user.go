package cached

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"user-post-service/internal/adapter/cache"
	domain "user-post-service/internal/domain/user"
	"user-post-service/internal/usecase/user"
)

// CachedUserRepository decorates a user repository with cache-aside reads.
// Writes go to the database and invalidate the cached entry; concurrent
// misses for the same id are collapsed into one database read.
type CachedUserRepository struct {
	dbRepo user.Repository
	cache  cache.UserCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewCachedUserRepository wraps dbRepo with the given cache.
func NewCachedUserRepository(dbRepo user.Repository, cache cache.UserCache, log *zap.Logger) user.Repository {
	return &CachedUserRepository{dbRepo: dbRepo, cache: cache, log: log}
}

func (r *CachedUserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return r.dbRepo.Create(ctx, u)
}

func (r *CachedUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if u := r.fromCache(ctx, id); u != nil {
		return u, nil
	}

	result, err, _ := r.group.Do(strconv.FormatInt(id, 10), func() (any, error) {
		// A concurrent caller may have filled the cache while we waited
		// on the flight group.
		if u := r.fromCache(ctx, id); u != nil {
			return u, nil
		}

		u, err := r.dbRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if err := r.cache.Set(ctx, u); err != nil {
			r.log.Warn("user not cached after read", zap.Int64("id", id), zap.Error(err))
		}
		return u, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.User), nil
}

// fromCache returns the cached user or nil. Cache errors degrade to a miss.
func (r *CachedUserRepository) fromCache(ctx context.Context, id int64) *domain.User {
	u, err := r.cache.Get(ctx, id)
	if err != nil {
		r.log.Warn("cache unavailable, reading from database", zap.Int64("id", id), zap.Error(err))
		return nil
	}
	return u
}

func (r *CachedUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.dbRepo.GetByEmail(ctx, email)
}

func (r *CachedUserRepository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	stored, err := r.dbRepo.Update(ctx, u)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Delete(ctx, u.ID); err != nil {
		r.log.Warn("stale cache entry after update", zap.Int64("id", u.ID), zap.Error(err))
	}
	return stored, nil
}

func (r *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.dbRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := r.cache.Delete(ctx, id); err != nil {
		r.log.Warn("stale cache entry after delete", zap.Int64("id", id), zap.Error(err))
	}
	return nil
}

func (r *CachedUserRepository) List(ctx context.Context, query string, page, limit int64) ([]domain.User, int64, error) {
	return r.dbRepo.List(ctx, query, page, limit)
}

func (r *CachedUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.dbRepo.Exists(ctx, id)
}
