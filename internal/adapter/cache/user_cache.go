package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domain "user-post-service/internal/domain/user"
)

const userKeyPrefix = "user:"

// UserCache stores user records by id for read-path acceleration.
type UserCache interface {
	// Get returns the cached user, or nil on a miss.
	Get(ctx context.Context, id int64) (*domain.User, error)

	// Set stores the user under its id with the configured TTL.
	Set(ctx context.Context, u *domain.User) error

	// Delete invalidates the entry for the given id.
	Delete(ctx context.Context, id int64) error
}

// RedisUserCache is a Redis-backed UserCache storing users as JSON.
type RedisUserCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisUserCache creates a UserCache on top of the given Redis client.
func NewRedisUserCache(client *redis.Client, ttl time.Duration, log *zap.Logger) UserCache {
	return &RedisUserCache{client: client, ttl: ttl, log: log}
}

func userKey(id int64) string {
	return fmt.Sprintf("%s%d", userKeyPrefix, id)
}

func (c *RedisUserCache) Get(ctx context.Context, id int64) (*domain.User, error) {
	data, err := c.client.Get(ctx, userKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		c.log.Error("cache read failed", zap.Int64("user_id", id), zap.Error(err))
		return nil, err
	}

	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		c.log.Error("cached user is not valid JSON", zap.Int64("user_id", id), zap.Error(err))
		return nil, err
	}

	return &u, nil
}

func (c *RedisUserCache) Set(ctx context.Context, u *domain.User) error {
	if u == nil {
		return errors.New("cannot cache nil user")
	}

	data, err := json.Marshal(u)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, userKey(u.ID), data, c.ttl).Err(); err != nil {
		c.log.Error("cache write failed", zap.Int64("user_id", u.ID), zap.Error(err))
		return err
	}

	c.log.Debug("user cached", zap.Int64("user_id", u.ID), zap.Duration("ttl", c.ttl))
	return nil
}

func (c *RedisUserCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, userKey(id)).Err(); err != nil {
		c.log.Error("cache invalidation failed", zap.Int64("user_id", id), zap.Error(err))
		return err
	}
	return nil
}
