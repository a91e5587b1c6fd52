package redis

import (
	"context"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

// Set stores value as JSON. Strings and byte slices are stored as they are so
// callers can round trip pre-encoded payloads.
func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	var payload interface{}
	switch v := value.(type) {
	case string, []byte:
		payload = v
	default:
		jsonValue, err := json.Marshal(value)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		payload = jsonValue
	}

	err := r.client.Set(ctx, key, payload, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// Get returns an empty string without error when the key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return data, nil
}

func (r *redisRepository) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, exceptions.ErrRedisGet(err)
	}
	return count > 0, nil
}
