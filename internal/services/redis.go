package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// Cached public listings go stale after this long even without an admin
// mutation; the cron refreshes them sooner.
const activeAdsTTL = 10 * time.Minute

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

func activeAdsKey(adType string) string {
	if adType == "" {
		return "ads:active"
	}
	return fmt.Sprintf("ads:active:%s", adType)
}

// CacheActiveAds stores a serialized public listing. A missing Redis client
// degrades to no caching.
func CacheActiveAds(ctx context.Context, adType string, ads []map[string]interface{}) error {
	if RedisClient == nil {
		return nil
	}

	data, err := json.Marshal(ads)
	if err != nil {
		return err
	}

	return RedisClient.Set(ctx, activeAdsKey(adType), data, activeAdsTTL).Err()
}

// GetCachedActiveAds retrieves a cached public listing.
func GetCachedActiveAds(ctx context.Context, adType string) ([]map[string]interface{}, bool) {
	if RedisClient == nil {
		return nil, false
	}

	data, err := RedisClient.Get(ctx, activeAdsKey(adType)).Result()
	if err != nil {
		return nil, false
	}

	var ads []map[string]interface{}
	if err := json.Unmarshal([]byte(data), &ads); err != nil {
		return nil, false
	}

	return ads, true
}

// InvalidateActiveAds drops every cached listing. Called after any admin
// mutation of an advertisement.
func InvalidateActiveAds(ctx context.Context) {
	if RedisClient == nil {
		return
	}

	keys, err := RedisClient.Keys(ctx, "ads:active*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	RedisClient.Del(ctx, keys...)
}
