package qcache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/clubsphere/backend/pkg/xcontext"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	entryPrefix = "qc:"
	tagPrefix   = "qctag:"
)

// redisCache shares query results between processes hosting the same
// data layer. Entries are stored as JSON; a set per tag records which
// keys the tag owns so InvalidateTag can drop them all. De-duplication
// of concurrent fetches is per process, which is enough: a duplicate
// fetch from another process is harmless, only redundant.
type redisCache struct {
	redisClient *redis.Client
	flights     singleflight.Group
}

func NewRedisCache(ctx context.Context) (*redisCache, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:            xcontext.Configs(ctx).Cache.RedisAddr,
		MaxRetries:      5,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		PoolSize:        5,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisCache{redisClient: redisClient}, nil
}

func (c *redisCache) GetOrFetch(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	v, err, _ := c.flights.Do(key.String(), func() (any, error) {
		data, err := c.redisClient.Get(ctx, entryPrefix+key.String()).Bytes()
		if err == nil {
			return json.RawMessage(data), nil
		}

		if !errors.Is(err, redis.Nil) {
			xcontext.Logger(ctx).Warnf("Cannot read cache entry %s: %v", key, err)
		}

		fetched, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		encoded, err := json.Marshal(fetched)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot encode cache entry %s: %v", key, err)
			return fetched, nil
		}

		pipe := c.redisClient.Pipeline()
		pipe.Set(ctx, entryPrefix+key.String(), encoded, 0)
		pipe.SAdd(ctx, tagPrefix+key.Tag, key.String())
		if _, err := pipe.Exec(ctx); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot store cache entry %s: %v", key, err)
		}

		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (c *redisCache) Invalidate(ctx context.Context, keys ...Key) {
	go func() {
		ctx := context.WithoutCancel(ctx)
		for _, key := range keys {
			pipe := c.redisClient.Pipeline()
			pipe.Del(ctx, entryPrefix+key.String())
			pipe.SRem(ctx, tagPrefix+key.Tag, key.String())
			if _, err := pipe.Exec(ctx); err != nil {
				xcontext.Logger(ctx).Warnf("Cannot invalidate cache entry %s: %v", key, err)
			}
		}
	}()
}

func (c *redisCache) InvalidateTag(ctx context.Context, tag string) {
	go func() {
		ctx := context.WithoutCancel(ctx)
		members, err := c.redisClient.SMembers(ctx, tagPrefix+tag).Result()
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot list cache tag %s: %v", tag, err)
			return
		}

		keys := make([]string, 0, len(members)+1)
		for _, member := range members {
			keys = append(keys, entryPrefix+member)
		}
		keys = append(keys, tagPrefix+tag)

		if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot invalidate cache tag %s: %v", tag, err)
		}
	}()
}
