package redis

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable is returned when no Redis connection is configured.
var ErrUnavailable = errors.New("redis client is not initialized")

// redisClient holds the Redis client connection
var redisClient *redis.Client

// Init initializes the Redis connection and sets the global client.
// The service runs without Redis, so a failure is returned instead of
// aborting the process.
func Init(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err = client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to Redis")
	redisClient = client

	return client, nil
}

// GetClient returns the global Redis client connection
func GetClient() *redis.Client {
	return redisClient
}

// Close closes the Redis client connection
func Close() error {
	if redisClient != nil {
		log.Println("Closing Redis connection...")
		err := redisClient.Close()
		redisClient = nil
		return err
	}
	return nil
}

// Set stores a key-value pair in Redis; a no-op without a connection
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Set(ctx, key, value, expiration).Err()
}

// GetBytes retrieves a raw value by key from Redis
func GetBytes(ctx context.Context, key string) ([]byte, error) {
	if redisClient == nil {
		return nil, ErrUnavailable
	}
	return redisClient.Get(ctx, key).Bytes()
}

// Delete removes a key from Redis
func Delete(ctx context.Context, key string) error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Del(ctx, key).Err()
}

// DeleteByPrefix removes every key matching prefix. Keys are walked
// with SCAN so the server is never blocked by one large KEYS call.
func DeleteByPrefix(ctx context.Context, prefix string) error {
	if redisClient == nil {
		return nil
	}

	iter := redisClient.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
