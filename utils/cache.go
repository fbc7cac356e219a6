// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"shiftsync/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SessionClient holds sessions, undo ledgers and sync locks.
var SessionClient *redis.Client

// InitRedis initializes the Redis client used for session state.
func InitRedis() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		GetLogger().Fatal("Failed to connect to Redis (Session)", zap.Error(err))
	}
}

// GetSessionClient returns the session Redis client, connecting on first use.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitRedis()
	}
	return SessionClient
}
