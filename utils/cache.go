package utils

import (
	"context"
	"log"
	"time"

	"nutrify/config"

	"github.com/go-redis/redis/v8"
)

// DraftCacheClient backs in-progress questionnaire drafts.
var DraftCacheClient *redis.Client

// InitDraftCache initializes the Redis client used for questionnaire drafts.
func InitDraftCache() {
	DraftCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDraftDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := DraftCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Drafts): %v", err)
	}
}

// GetDraftCacheClient returns the Redis client for questionnaire drafts.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		InitDraftCache()
	}
	return DraftCacheClient
}
