package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"shareit/internal/pkg/config"
	"shareit/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const userKeyPrefix = "shareit:user:"

func NewRedis(cfg config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// UserCache is a read-through cache in front of a user read store. Redis failures are
// logged and the call falls through to the wrapped store.
type UserCache struct {
	next queries.UserReadStore
	rdb  redis.Cmdable
	ttl  time.Duration
	sf   singleflight.Group

	// generation moves on every UserChanged; a fill that saw an older one must not store
	mu         sync.Mutex
	generation uint64
}

func NewUserCache(next queries.UserReadStore, rdb redis.Cmdable, ttl time.Duration) *UserCache {
	return &UserCache{next: next, rdb: rdb, ttl: ttl}
}

func (c *UserCache) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	key := userKey(id)

	b, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == redis.Nil:
	case err != nil:
		slog.WarnContext(ctx, "can't get user from redis", slog.String("key", key), slog.Any("error", err))
	default:
		var view queries.UserView
		if err = json.Unmarshal(b, &view); err == nil {
			return &view, nil
		}
		slog.WarnContext(ctx, "can't decode cached user", slog.String("key", key), slog.Any("error", err))
	}

	// the fill outlives any single caller, so waiters don't inherit the first one's cancellation
	fillCtx := context.WithoutCancel(ctx)
	ch := c.sf.DoChan(key, func() (any, error) {
		return c.fill(fillCtx, id, key)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		view := *res.Val.(*queries.UserView)
		return &view, nil
	}
}

func (c *UserCache) fill(ctx context.Context, id int64, key string) (*queries.UserView, error) {
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	view, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(view)
	if err != nil {
		return view, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return view, nil
	}
	if serr := c.rdb.Set(ctx, key, raw, c.ttl).Err(); serr != nil {
		slog.WarnContext(ctx, "can't store user in redis", slog.String("key", key), slog.Any("error", serr))
	}
	return view, nil
}

func (c *UserCache) List(ctx context.Context) ([]*queries.UserView, error) {
	return c.next.List(ctx)
}

// UserChanged drops the cached view after an update or delete commits
func (c *UserCache) UserChanged(ctx context.Context, id int64) {
	key := userKey(id)
	c.mu.Lock()
	c.generation++
	c.mu.Unlock()
	c.sf.Forget(key)

	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		slog.WarnContext(ctx, "can't evict user from redis", slog.Int64("user_id", id), slog.Any("error", err))
	}
}

func userKey(id int64) string {
	return userKeyPrefix + strconv.FormatInt(id, 10)
}
