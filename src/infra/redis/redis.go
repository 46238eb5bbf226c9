package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client            *redis.ClusterClient
	keyPrefix         string
	defaultTTLSeconds time.Duration
}

func NewRedisClient(addrs string, poolSize int, defaultTTLSeconds time.Duration) *RedisClient {
	client := redis.NewClusterClient(&redis.ClusterOptions{
		Addrs: strings.Split(addrs, ","),

		// Pool settings para alta concorrência
		PoolSize:     poolSize,
		MinIdleConns: 10,

		// Cluster específico
		MaxRedirects: 3,

		// Timeouts otimizados para cache
		DialTimeout:  5 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,

		// Retry e circuit breaker
		MaxRetries:      3,
		MinRetryBackoff: 50 * time.Millisecond,
		MaxRetryBackoff: 500 * time.Millisecond,
	})

	return &RedisClient{
		client:            client,
		defaultTTLSeconds: defaultTTLSeconds,
	}
}

// WithPrefix devolve um client que prefixa todas as chaves (útil em testes).
func (rc *RedisClient) WithPrefix(prefix string) *RedisClient {
	return &RedisClient{
		client:            rc.client,
		keyPrefix:         prefix,
		defaultTTLSeconds: rc.defaultTTLSeconds,
	}
}

func (rc *RedisClient) prefixed(key string) string {
	return rc.keyPrefix + key
}

func (rc *RedisClient) SetWithRegistry(ctx context.Context, cacheKey string, cacheValue string, registryKeys []string) error {
	pipe := rc.client.Pipeline()

	// 1. Set do cache principal
	fields := map[string]interface{}{
		"data":      cacheValue,
		"cached_at": time.Now().Unix(),
	}
	pipe.HSet(ctx, rc.prefixed(cacheKey), fields)
	pipe.Expire(ctx, rc.prefixed(cacheKey), rc.defaultTTLSeconds)

	// 2. Registrar a chave nos registries dos usuários envolvidos,
	// para invalidação dirigida quando um edge deles mudar.
	for _, registryKey := range registryKeys {
		pipe.SAdd(ctx, rc.prefixed(registryKey), rc.prefixed(cacheKey))
		pipe.Expire(ctx, rc.prefixed(registryKey), rc.defaultTTLSeconds)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (rc *RedisClient) GetKey(ctx context.Context, key string) (string, bool, error) {
	result := rc.client.HGet(ctx, rc.prefixed(key), "data")

	// Cache miss
	if result.Err() == redis.Nil {
		return "", false, nil
	}
	if result.Err() != nil {
		return "", false, result.Err()
	}

	return result.Val(), true, nil
}

// GetMultipleSetMembers devolve os membros de cada registry key.
func (rc *RedisClient) GetMultipleSetMembers(ctx context.Context, registryKeys []string) (map[string][]string, error) {
	results := make(map[string][]string, len(registryKeys))

	for _, registryKey := range registryKeys {
		members, err := rc.client.SMembers(ctx, rc.prefixed(registryKey)).Result()
		if err != nil && err != redis.Nil {
			return nil, fmt.Errorf("registry key %s: %w", registryKey, err)
		}

		results[rc.prefixed(registryKey)] = members
	}

	return results, nil
}

// Invalidação em cluster requer cuidado especial
func (rc *RedisClient) InvalidateKeys(ctx context.Context, keys []string) error {
	var errors []string

	for _, key := range keys {
		if err := rc.client.Del(ctx, key).Err(); err != nil {
			errors = append(errors, fmt.Sprintf("key %s: %v", key, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalidation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// FlushByPrefix remove todas as chaves com o prefixo do client (testes).
func (rc *RedisClient) FlushByPrefix(ctx context.Context) error {
	if rc.keyPrefix == "" {
		return fmt.Errorf("refusing to flush without a key prefix")
	}

	var keys []string
	err := rc.client.ForEachMaster(ctx, func(ctx context.Context, master *redis.Client) error {
		iter := master.Scan(ctx, 0, rc.keyPrefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		return iter.Err()
	})
	if err != nil {
		return err
	}

	return rc.InvalidateKeys(ctx, keys)
}

// Health check para o cluster
func (rc *RedisClient) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}
