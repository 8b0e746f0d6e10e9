package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKV maps the store directly onto string keys in a redis
// database. No expiry is set; the session and ledger live until
// explicitly deleted, same as the file backends.
type RedisKV struct {
	rdb *redis.Client
	ctx context.Context
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func OpenRedis(cfg RedisConfig) (*RedisKV, error) {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisKV{rdb: rdb, ctx: ctx}, nil
}

func (s *RedisKV) Get(key string) (string, bool, error) {
	v, err := s.rdb.Get(s.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisKV) Set(key, value string) error {
	return s.rdb.Set(s.ctx, key, value, 0).Err()
}

func (s *RedisKV) Delete(key string) error {
	return s.rdb.Del(s.ctx, key).Err()
}
