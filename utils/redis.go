// File: utils/redis.go
package utils

import (
	"context"
	"log"
	"time"

	"hireflow/config"

	"github.com/go-redis/redis/v8"
)

// QueueRedisClient is the shared client for the delivery queue's Redis
// instance, used for health probing alongside the asynq worker.
var QueueRedisClient *redis.Client

// InitQueueRedis initializes the Redis client for the delivery queue.
func InitQueueRedis() {
	QueueRedisClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := QueueRedisClient.Ping(ctx).Result(); err != nil {
		log.Printf("Redis (delivery queue) not reachable at startup: %v", err)
	}
}

// GetQueueRedisClient returns the delivery queue Redis client.
func GetQueueRedisClient() *redis.Client {
	if QueueRedisClient == nil {
		InitQueueRedis()
	}
	return QueueRedisClient
}
