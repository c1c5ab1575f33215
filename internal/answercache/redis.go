package answercache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis"
)

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Cache = (*redisCache)(nil)

// NewRedisCache stores answers as redis hashes. Zero ttl keeps them forever.
func NewRedisCache(opts redis.Options, ttl time.Duration) Cache {
	client := redis.NewClient(&opts)
	return &redisCache{client: client, ttl: ttl}
}

func (r *redisCache) Get(ctx context.Context, key Key) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	fields, err := r.client.HGetAll(key.String()).Result()
	if err != nil {
		return 0, fmt.Errorf("cannot get %s from redis: %w", key, err)
	}
	return unpackAnswer(key, fields)
}

func (r *redisCache) Put(ctx context.Context, key Key, answer int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.client.HMSet(key.String(), packAnswer(key, answer)).Err(); err != nil {
		return fmt.Errorf("cannot put %s to redis: %w", key, err)
	}
	if r.ttl > 0 {
		if err := r.client.Expire(key.String(), r.ttl).Err(); err != nil {
			return fmt.Errorf("cannot set expiration for %s: %w", key, err)
		}
	}
	return nil
}

func (r *redisCache) Close() error {
	return r.client.Close()
}

func packAnswer(key Key, answer int) map[string]interface{} {
	fields := make(map[string]interface{}, 4)

	fields["day"] = int(key.Day)
	fields["part"] = int(key.Part)
	fields["answer"] = answer
	fields["solved"] = time.Now().UTC().Format(time.RFC3339)

	return fields
}

func unpackAnswer(key Key, fields map[string]string) (int, error) {
	raw, found := fields["answer"]
	if !found {
		return 0, ErrNotCached
	}
	answer, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("corrupted answer for %s: %w", key, err)
	}
	return answer, nil
}
