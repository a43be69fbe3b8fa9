package db

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// KVRedisClient struct holds the Redis client and context
type KVRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewKVRedisClient initializes a new Redis client with default options
func NewKVRedisClient(ctx context.Context, client *redis.Client) *KVRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &KVRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *KVRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *KVRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// GetContext returns the context the client operates with
func (r *KVRedisClient) GetContext() context.Context {
	return r.ctx
}

// Ping checks the connection to Redis
func (r *KVRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}

// Keys returns all keys matching the given pattern
func (r *KVRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key from Redis
func (r *KVRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
