// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"glowspa/config"
)

var (
	// SessionCacheClient holds live wizard sessions and the customer-details mirror.
	SessionCacheClient *redis.Client
	// CatalogCacheClient is the dedicated client for catalog caching.
	CatalogCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client backing wizard sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the wizard session client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitCatalogCache initializes the Redis client for catalog caching.
func InitCatalogCache() {
	CatalogCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCatalogCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CatalogCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Catalog Cache): %v", err)
	}
}

// GetCatalogCacheClient returns the Redis client for catalog caching.
func GetCatalogCacheClient() *redis.Client {
	if CatalogCacheClient == nil {
		InitCatalogCache()
	}
	return CatalogCacheClient
}

// InitRedis brings up every Redis client the server uses.
func InitRedis() {
	InitSessionCache()
	InitCatalogCache()
}
