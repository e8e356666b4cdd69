package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix aísla las claves de esta aplicación dentro de una instancia compartida.
const keyPrefix = "comex:calc:"

// RedisOptions conexión a Redis.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache caché compartida entre réplicas sobre go-redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache abre el cliente y verifica la conexión con PING.
func NewRedisCache(ctx context.Context, opts RedisOptions) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cache: redis %s: %w", opts.Addr, err)
	}
	return &RedisCache{client: rdb}, nil
}

// Get redis.Nil se traduce en ausencia, no en error.
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: redis get: %w", err)
	}
	return val, true, nil
}

// Set guarda el valor con expiración ttl (0 = sin expiración).
func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}
	return nil
}

// Close cierra el pool de conexiones.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
