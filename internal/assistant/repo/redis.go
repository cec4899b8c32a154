package repo

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	errx "github.com/merkaba-entertainment/m1a-assistant/internal/core/error"
	logx "github.com/merkaba-entertainment/m1a-assistant/pkg/logger"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
)

// RedisKeyValueStore backs the engine's persisted state (tip suppression,
// response cache) with Redis. Values never expire here; the response cache
// applies its own per-entry TTL.
type RedisKeyValueStore struct {
	rdb    redis.Cmdable
	prefix string
}

func NewRedisKeyValueStore(rdb redis.Cmdable, prefix string) *RedisKeyValueStore {
	return &RedisKeyValueStore{rdb: rdb, prefix: prefix}
}

func (r *RedisKeyValueStore) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

func (r *RedisKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		logx.Error().Err(err).Str("key", r.key(key)).Msg("failed to read key from redis")
		return "", false, errx.WrapStorage(err)
	}
	return v, true, nil
}

func (r *RedisKeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		logx.Error().Err(err).Str("key", r.key(key)).Msg("failed to write key to redis")
		return errx.WrapStorage(err)
	}
	return nil
}

func (r *RedisKeyValueStore) Remove(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.key(key)).Err(); err != nil {
		logx.Error().Err(err).Str("key", r.key(key)).Msg("failed to delete key from redis")
		return errx.WrapStorage(err)
	}
	return nil
}

var _ model.KeyValueStore = (*RedisKeyValueStore)(nil)
