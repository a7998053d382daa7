// File: turfbook/utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"turfbook/config"

	"github.com/go-redis/redis/v8"
)

var (
	// StoreClient backs the redis variant of the booking/wishlist repositories.
	StoreClient *redis.Client
	// NotifClient is the dedicated client for the admin notification feed.
	NotifClient *redis.Client
)

// InitStoreClient initializes the Redis client used as the local document store.
func InitStoreClient() {
	StoreClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStoreDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := StoreClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Store): %v", err)
	}
}

// GetStoreClient returns the local-store client.
func GetStoreClient() *redis.Client {
	if StoreClient == nil {
		InitStoreClient()
	}
	return StoreClient
}

// InitNotifClient initializes the Redis client for admin notifications.
func InitNotifClient() {
	NotifClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := NotifClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Notifications): %v", err)
	}
}

// GetNotifClient returns the notification feed client.
func GetNotifClient() *redis.Client {
	if NotifClient == nil {
		InitNotifClient()
	}
	return NotifClient
}
