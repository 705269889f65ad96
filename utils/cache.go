package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/itskavin/Forex-Market-Hours/config"
)

// PrefsClient is the redis client backing the preference store.
var PrefsClient *redis.Client

// InitRedis initializes the preference-store redis client and verifies
// connectivity.
func InitRedis() {
	PrefsClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPrefsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := PrefsClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Preferences): %v", err)
	}
}

// GetPrefsClient returns the preference-store client.
func GetPrefsClient() *redis.Client {
	if PrefsClient == nil {
		InitRedis()
	}
	return PrefsClient
}
