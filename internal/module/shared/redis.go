package shared

import (
	"context"

	"github.com/sbilalh/Binary-Compression/utils/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type RedisClient struct {
	logger zerolog.Logger
	config *config.Conf
	Client *redis.Client
}

func NewRedisClient(config *config.Conf, logger zerolog.Logger) *RedisClient {
	return &RedisClient{
		logger: logger,
		Client: nil,
		config: config,
	}
}

func (r *RedisClient) Connect(ctx context.Context) error {
	opts, err := redis.ParseURL(r.config.String("redis.url"))
	if err != nil {
		return err
	}

	r.Client = redis.NewClient(opts)
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return err
	}

	return nil
}

func (r *RedisClient) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
